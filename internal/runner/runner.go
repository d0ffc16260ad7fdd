// Package runner executes the lab experiments: build the problem
// data, hand it to the external solver or training engine in one
// blocking call, then collect and publish the report.
package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/jixinwang95/mban-orientation/internal/config"
	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/internal/nn"
	"github.com/jixinwang95/mban-orientation/internal/solver"
	"github.com/jixinwang95/mban-orientation/logging"
	"github.com/jixinwang95/mban-orientation/statistics"
)

var log = logging.Get()

// Bridge is how the viewer asks for the latest report without
// sharing runner state.
type Bridge struct {
	ReportRequestStream chan<- struct{}
	ReportStream        <-chan string
}

type Runner struct {
	backend solver.Backend
	engine  nn.Engine

	mu       sync.Mutex
	report   string
	progress progressSample
}

func New(backend solver.Backend, engine nn.Engine) (*Runner, error) {
	if backend == nil {
		return nil, fmt.Errorf("runner needs a solver backend")
	}
	if engine == nil {
		return nil, fmt.Errorf("runner needs a training engine")
	}

	return &Runner{
		backend: backend,
		engine:  engine,
		report:  "experiment is still running",
	}, nil
}

func (r *Runner) Start() error {
	statistics.Init()

	switch config.LabGeneralConfig.Experiment {
	case "transport", "knapsack", "sentiment":
		return nil
	default:
		return fmt.Errorf("experiment kind %q is not recognized", config.LabGeneralConfig.Experiment)
	}
}

// Run launches the configured experiment and returns the bridge
// serving report requests while (and after) it runs.
func (r *Runner) Run(ctx context.Context) (Bridge, error) {
	requestStream := make(chan struct{})
	reportStream := make(chan string)

	go func() {
		var report string
		var err error

		switch config.LabGeneralConfig.Experiment {
		case "transport":
			report, err = r.runTransport(ctx)
		case "knapsack":
			report, err = r.runKnapsack(ctx)
		case "sentiment":
			report, err = r.runSentiment(ctx)
		}

		if err != nil {
			log.Err(err).Msg("experiment failed")
			report = fmt.Sprintf("experiment failed: %v", err)
		}

		r.setReport(report + "\n" + statistics.Display())
		log.Info().Msg("experiment finished")
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-requestStream:
				reportStream <- r.getReport()
			}
		}
	}()

	return Bridge{
		ReportRequestStream: requestStream,
		ReportStream:        reportStream,
	}, nil
}

func (r *Runner) setReport(report string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.report = report
}

func (r *Runner) getReport() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.report
}

func solveOptionsFromConfig() (model.SolveOptions, error) {
	cfg := config.LabGeneralConfig.Solve

	focus, err := model.ParseFocus(cfg.Focus)
	if err != nil {
		return model.SolveOptions{}, err
	}

	return model.SolveOptions{
		TimeLimitSeconds: cfg.TimeLimitSeconds,
		RelativeGap:      cfg.RelativeGap,
		Focus:            focus,
	}, nil
}
