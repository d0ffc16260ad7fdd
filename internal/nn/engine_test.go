package nn

import (
	"testing"

	"github.com/jixinwang95/mban-orientation/internal/model"
)

func smallNet(t *testing.T) Net {
	t.Helper()

	spec, err := NewBuilder(4).
		Embedding(6, 2).
		GlobalAveragePooling().
		Dense(4, ActivationReLU).
		Dense(1, ActivationSigmoid).
		Build()
	if err != nil {
		t.Fatalf("could not build spec: %v", err)
	}

	net, err := NewGorgoniaEngine().Build(spec)
	if err != nil {
		t.Fatalf("could not build network: %v", err)
	}

	return net
}

func smallData() ([][]int, []float64) {
	seqs := [][]int{
		{2, 2, 3}, {2, 3}, {2, 2}, {3, 2},
		{4, 5, 5}, {5, 4}, {5, 5}, {4, 4, 5},
	}
	labels := []float64{0, 0, 0, 0, 1, 1, 1, 1}

	return seqs, labels
}

func TestFitHistoryHasOneRowPerEpoch(t *testing.T) {
	net := smallNet(t)
	seqs, labels := smallData()

	const epochs = 5
	var reported []int

	history, err := net.Fit(seqs, labels, model.TrainOptions{
		Optimizer: "sgd",
		LearnRate: 0.1,
		BatchSize: 4,
		Epochs:    epochs,
		Seed:      1,
		OnEpoch: func(stats model.EpochStats) {
			reported = append(reported, stats.Epoch)
		},
	})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	if history.Len() != epochs {
		t.Fatalf("history has %d rows, want %d", history.Len(), epochs)
	}
	for i, stats := range history.Epochs {
		if stats.Epoch != i+1 {
			t.Fatalf("row %d is labeled epoch %d, want %d", i, stats.Epoch, i+1)
		}
	}

	if len(reported) != epochs {
		t.Fatalf("callback ran %d times, want %d", len(reported), epochs)
	}
	for i, epoch := range reported {
		if epoch != i+1 {
			t.Fatalf("callback %d reported epoch %d, want %d", i, epoch, i+1)
		}
	}
}

func TestFitWithValidationSplit(t *testing.T) {
	net := smallNet(t)
	seqs, labels := smallData()

	history, err := net.Fit(seqs, labels, model.TrainOptions{
		Optimizer:       "adam",
		LearnRate:       0.05,
		BatchSize:       2,
		Epochs:          3,
		ValidationSplit: 0.25,
		Seed:            1,
	})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	last := history.Last()
	if last.ValAccuracy < 0 || last.ValAccuracy > 1 {
		t.Fatalf("validation accuracy %f out of range", last.ValAccuracy)
	}
	if last.ValLoss <= 0 {
		t.Fatalf("validation loss %f, want positive", last.ValLoss)
	}
}

func TestEvaluateAfterFit(t *testing.T) {
	net := smallNet(t)
	seqs, labels := smallData()

	if _, err := net.Fit(seqs, labels, model.TrainOptions{
		LearnRate: 0.1,
		Epochs:    2,
		Seed:      1,
	}); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	loss, acc, err := net.Evaluate(seqs, labels)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if loss <= 0 {
		t.Fatalf("loss %f, want positive", loss)
	}
	if acc < 0 || acc > 1 {
		t.Fatalf("accuracy %f out of range", acc)
	}
}

func TestFitRejectsBadOptions(t *testing.T) {
	seqs, labels := smallData()

	tests := []struct {
		name string
		run  func(net Net) error
	}{
		{"NoEpochs", func(net Net) error {
			_, err := net.Fit(seqs, labels, model.TrainOptions{})
			return err
		}},
		{"MismatchedLabels", func(net Net) error {
			_, err := net.Fit(seqs, labels[:2], model.TrainOptions{Epochs: 1})
			return err
		}},
		{"BadValidationSplit", func(net Net) error {
			_, err := net.Fit(seqs, labels, model.TrainOptions{Epochs: 1, ValidationSplit: 1})
			return err
		}},
		{"UnknownOptimizer", func(net Net) error {
			_, err := net.Fit(seqs, labels, model.TrainOptions{Epochs: 1, Optimizer: "rprop"})
			return err
		}},
		{"TokenOutsideVocabulary", func(net Net) error {
			_, err := net.Fit([][]int{{99}}, []float64{1}, model.TrainOptions{Epochs: 1})
			return err
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.run(smallNet(t)); err == nil {
				t.Fatal("expected an error, got none")
			}
		})
	}
}

func TestEvaluateBeforeFit(t *testing.T) {
	net := smallNet(t)
	seqs, labels := smallData()

	if _, _, err := net.Evaluate(seqs, labels); err == nil {
		t.Fatal("expected an error, got none")
	}
}
