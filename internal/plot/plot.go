// Package plot renders training curves to image files. Output is
// presentation only; nothing reads it back.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// TrainingCurves writes loss.png and accuracy.png for a finished
// training run into dir, creating it when needed.
func TrainingCurves(history *model.History, dir string) error {
	if history.Len() == 0 {
		return fmt.Errorf("history is empty, nothing to plot")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create plot dir: %w", err)
	}

	hasVal := history.Epochs[0].ValLoss != 0 || history.Epochs[0].ValAccuracy != 0

	lossSeries := func(row model.EpochStats) (float64, float64) { return row.Loss, row.ValLoss }
	if err := savePlot(history, filepath.Join(dir, "loss.png"), "Loss", lossSeries, hasVal); err != nil {
		return err
	}

	accSeries := func(row model.EpochStats) (float64, float64) { return row.Accuracy, row.ValAccuracy }
	return savePlot(history, filepath.Join(dir, "accuracy.png"), "Accuracy", accSeries, hasVal)
}

func savePlot(history *model.History, path, name string, series func(model.EpochStats) (float64, float64), hasVal bool) error {
	p := plot.New()
	p.Title.Text = name + " per epoch"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = name

	train := make(plotter.XYs, history.Len())
	val := make(plotter.XYs, history.Len())
	for i, row := range history.Epochs {
		trainY, valY := series(row)
		train[i].X, train[i].Y = float64(row.Epoch), trainY
		val[i].X, val[i].Y = float64(row.Epoch), valY
	}

	var err error
	if hasVal {
		err = plotutil.AddLinePoints(p, "train", train, "validation", val)
	} else {
		err = plotutil.AddLinePoints(p, "train", train)
	}
	if err != nil {
		return fmt.Errorf("could not add %s series: %w", name, err)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}

	return nil
}
