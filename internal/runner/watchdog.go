package runner

import (
	"context"
	"time"

	"github.com/jixinwang95/mban-orientation/internal/model"
)

const watchInterval = 30 * time.Second

type progressSample struct {
	epochsDone int
	lastLoss   float64
}

func (h *progressSample) isStuck(o *progressSample) bool {
	if o == nil {
		return false
	}

	if o.epochsDone != h.epochsDone || h.epochsDone == 0 {
		return false
	}

	return true
}

func (r *Runner) recordProgress(stats model.EpochStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress.epochsDone++
	r.progress.lastLoss = stats.Loss
}

func (r *Runner) progressSnapshot() *progressSample {
	r.mu.Lock()
	defer r.mu.Unlock()

	sample := r.progress
	return &sample
}

// watchProgress warns when two consecutive samples show no epoch
// movement, which usually means the configured optimizer is far
// too slow for the interval, not that anything crashed.
func (r *Runner) watchProgress(ctx context.Context) {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	var prev *progressSample
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sample := r.progressSnapshot()
			if sample.isStuck(prev) {
				log.Warn().Msgf("no epoch finished in the last %v (stuck after epoch %d, loss %f)",
					watchInterval, sample.epochsDone, sample.lastLoss)
			}
			prev = sample
		}
	}
}
