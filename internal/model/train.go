package model

// EpochStats is one row of training history. Epoch is 1-based.
type EpochStats struct {
	Epoch       int     `yaml:"epoch"`
	Loss        float64 `yaml:"loss"`
	Accuracy    float64 `yaml:"accuracy"`
	ValLoss     float64 `yaml:"val_loss"`
	ValAccuracy float64 `yaml:"val_accuracy"`
}

// History collects per-epoch observations from a completed fit
// call. A fit over E epochs appends exactly E rows, in order.
type History struct {
	Epochs []EpochStats
}

func (h *History) Append(stats EpochStats) {
	h.Epochs = append(h.Epochs, stats)
}

func (h *History) Len() int {
	return len(h.Epochs)
}

func (h *History) Last() *EpochStats {
	if len(h.Epochs) == 0 {
		return nil
	}

	return &h.Epochs[len(h.Epochs)-1]
}

type TrainOptions struct {
	Optimizer       string
	LearnRate       float64
	BatchSize       int
	Epochs          int
	ValidationSplit float64
	Seed            int64

	// OnEpoch, when set, is called after every finished epoch with
	// the row that was just appended to the history.
	OnEpoch func(EpochStats)
}
