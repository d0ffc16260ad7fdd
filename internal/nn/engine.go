package nn

import (
	"github.com/jixinwang95/mban-orientation/internal/model"
)

// Engine materializes a Spec into a trainable network. There is
// one real engine (gorgonia) and test doubles elsewhere.
type Engine interface {
	Name() string
	Build(spec Spec) (Net, error)
}

// Net is a built network. Fit blocks for the whole training run
// and returns one history row per epoch; Evaluate scores held-out
// data against the trained parameters.
type Net interface {
	Fit(seqs [][]int, labels []float64, opts model.TrainOptions) (*model.History, error)
	Evaluate(seqs [][]int, labels []float64) (loss, accuracy float64, err error)
}
