package sim

import (
	"math/rand"
	"sort"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/opt"
)

// RandomKnapsack draws a synthetic single-row binary knapsack.
// The rng is passed in so scenarios stay reproducible end to end.
func RandomKnapsack(rng *rand.Rand, items int) *model.KnapsackInstance {
	weights := make([]float64, items)
	prices := make([]float64, items)

	var totalWeight float64
	for i := 0; i < items; i++ {
		weights[i] = 1 + rng.Float64()*9
		prices[i] = 1 + rng.Float64()*99
		totalWeight += weights[i]
	}

	return &model.KnapsackInstance{
		Prices:     prices,
		Weights:    [][]float64{weights},
		Capacities: []float64{totalWeight / 2},
	}
}

type greedyItem struct {
	index int
	ratio float64
}

// Greedy packs items by price over weight until the capacity row
// is exhausted. It is the baseline the exact solver is compared
// against, never a replacement for it.
func Greedy(inst *model.KnapsackInstance) float64 {
	items := make([]*greedyItem, len(inst.Prices))
	for i := range inst.Prices {
		items[i] = &greedyItem{
			index: i,
			ratio: inst.Prices[i] / inst.Weights[0][i],
		}
	}

	sort.Sort(&opt.ReverseSorter[greedyItem]{
		Objects: items,
		By:      func(it *greedyItem) float64 { return it.ratio },
	})

	remaining := inst.Capacities[0]
	var value float64
	for _, it := range items {
		weight := inst.Weights[0][it.index]
		if weight <= remaining {
			remaining -= weight
			value += inst.Prices[it.index]
		}
	}

	return value
}
