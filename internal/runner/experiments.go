package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/jixinwang95/mban-orientation/internal/config"
	"github.com/jixinwang95/mban-orientation/internal/dataset"
	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/internal/nn"
	"github.com/jixinwang95/mban-orientation/internal/plot"
	"github.com/jixinwang95/mban-orientation/opt"
	"github.com/jixinwang95/mban-orientation/statistics"
)

// The fixed instances below are the lab's worked examples; the
// numbers are part of the exercise, not configuration.

func transportExample() *model.TransportInstance {
	return &model.TransportInstance{
		Supplies: []float64{1000, 4000},
		Demands:  []float64{500, 900, 1800, 200, 700},
		Costs: [][]float64{
			{2, 4, 5, 2, 1},
			{3, 1, 3, 2, 3},
		},
	}
}

func knapsackExample() *model.KnapsackInstance {
	return &model.KnapsackInstance{
		Prices:     []float64{1, 1},
		Weights:    [][]float64{{1, 2}},
		Capacities: []float64{1.5},
	}
}

func (r *Runner) runTransport(ctx context.Context) (string, error) {
	inst := transportExample()
	if !inst.Balanced() {
		log.Warn().Msgf("demand %f exceeds supply %f, expect an infeasible status",
			inst.TotalDemand(), inst.TotalSupply())
	}

	prob, err := opt.Transportation(inst)
	if err != nil {
		return "", fmt.Errorf("could not formulate transportation model: %w", err)
	}

	opts, err := solveOptionsFromConfig()
	if err != nil {
		return "", err
	}

	res, err := r.backend.Solve(ctx, prob, opts)
	if err != nil {
		return "", fmt.Errorf("%s backend failed: %w", r.backend.Name(), err)
	}
	statistics.Change(fmt.Sprintf("solves with status %v", res.Status), 1)

	if res.Status != model.OPTIMAL {
		return fmt.Sprintf("transportation solve finished with status %v", res.Status), nil
	}

	if err := opt.VerifyTransportPlan(inst, res.Values, 1e-6); err != nil {
		return "", fmt.Errorf("solver returned an invalid plan: %w", err)
	}

	return formatTransportPlan(inst, res), nil
}

func (r *Runner) runKnapsack(ctx context.Context) (string, error) {
	inst := knapsackExample()

	prob, err := opt.Knapsack(inst)
	if err != nil {
		return "", fmt.Errorf("could not formulate knapsack model: %w", err)
	}

	opts, err := solveOptionsFromConfig()
	if err != nil {
		return "", err
	}

	res, err := r.backend.Solve(ctx, prob, opts)
	if err != nil {
		return "", fmt.Errorf("%s backend failed: %w", r.backend.Name(), err)
	}
	statistics.Change(fmt.Sprintf("solves with status %v", res.Status), 1)

	if res.Status != model.OPTIMAL {
		return fmt.Sprintf("knapsack solve finished with status %v", res.Status), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "knapsack objective: %.4f\n", res.Objective)
	for i, v := range res.Values {
		if v > 0.5 {
			fmt.Fprintf(&sb, "item %d selected (price %.2f)\n", i, inst.Prices[i])
		}
	}

	return sb.String(), nil
}

func (r *Runner) runSentiment(ctx context.Context) (string, error) {
	cfg := config.LabGeneralConfig

	corpus, err := dataset.Load(cfg.Dataset.Path, dataset.LoadOptions{
		VocabSize: cfg.Dataset.VocabSize,
	})
	if err != nil {
		return "", err
	}
	if corpus.Train.Len() == 0 || corpus.Test.Len() == 0 {
		return "", fmt.Errorf("corpus needs both train and test reviews")
	}

	maxLen := cfg.Dataset.MaxLen
	trainSeqs := dataset.PadAll(corpus.Train.Sequences, maxLen)
	testSeqs := dataset.PadAll(corpus.Test.Sequences, maxLen)

	// token ids run from 0 (pad) through the vocabulary cap
	spec, err := nn.NewBuilder(maxLen).
		Embedding(cfg.Dataset.VocabSize+1, cfg.Train.EmbedDim).
		GlobalAveragePooling().
		Dense(cfg.Train.HiddenUnits, nn.ActivationReLU).
		Dense(1, nn.ActivationSigmoid).
		Build()
	if err != nil {
		return "", fmt.Errorf("bad network spec: %w", err)
	}

	net, err := r.engine.Build(spec)
	if err != nil {
		return "", fmt.Errorf("%s engine could not build the network: %w", r.engine.Name(), err)
	}

	watchCtx, stopWatchdog := context.WithCancel(ctx)
	defer stopWatchdog()
	go r.watchProgress(watchCtx)

	history, err := net.Fit(trainSeqs, corpus.Train.Labels, model.TrainOptions{
		Optimizer:       cfg.Train.Optimizer,
		LearnRate:       cfg.Train.LearnRate,
		BatchSize:       cfg.Train.BatchSize,
		Epochs:          cfg.Train.Epochs,
		ValidationSplit: cfg.Train.ValidationSplit,
		Seed:            cfg.Train.Seed,
		OnEpoch: func(stats model.EpochStats) {
			statistics.Change("epochs completed", 1)
			r.recordProgress(stats)
		},
	})
	if err != nil {
		return "", fmt.Errorf("training failed: %w", err)
	}
	stopWatchdog()

	testLoss, testAcc, err := net.Evaluate(testSeqs, corpus.Test.Labels)
	if err != nil {
		return "", fmt.Errorf("evaluation failed: %w", err)
	}

	if cfg.PlotDir != "" {
		if err := plot.TrainingCurves(history, cfg.PlotDir); err != nil {
			log.Err(err).Msg("could not render training curves")
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "sentiment model after %d epochs\n", history.Len())
	if last := history.Last(); last != nil {
		fmt.Fprintf(&sb, "final train loss %.4f, accuracy %.4f\n", last.Loss, last.Accuracy)
	}
	fmt.Fprintf(&sb, "test loss %.4f, accuracy %.4f\n", testLoss, testAcc)

	counts := dataset.CountTokens(dataset.Flatten(corpus.Train.Sequences))
	fmt.Fprintf(&sb, "most frequent tokens:\n")
	for _, tc := range dataset.TopTokens(counts, 10) {
		fmt.Fprintf(&sb, "  token %d seen %d times\n", tc.Token, tc.Count)
	}

	return sb.String(), nil
}

func formatTransportPlan(inst *model.TransportInstance, res *model.SolveResult) string {
	nCon := len(inst.Demands)

	var sb strings.Builder
	fmt.Fprintf(&sb, "transportation cost: %.4f\n", res.Objective)

	sb.WriteString("shipments:")
	for j := range inst.Demands {
		fmt.Fprintf(&sb, "%10s", fmt.Sprintf("c%d", j))
	}
	sb.WriteString("\n")

	for i := range inst.Supplies {
		fmt.Fprintf(&sb, "s%d:       ", i)
		for j := 0; j < nCon; j++ {
			fmt.Fprintf(&sb, "%10.1f", res.Values[i*nCon+j])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
