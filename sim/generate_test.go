package sim

import (
	"math/rand"
	"testing"
)

func TestRandomKnapsack(t *testing.T) {
	inst := RandomKnapsack(rand.New(rand.NewSource(42)), 50)

	if len(inst.Prices) != 50 || len(inst.Weights[0]) != 50 {
		t.Fatalf("got %d prices and %d weights, want 50 each", len(inst.Prices), len(inst.Weights[0]))
	}

	var totalWeight float64
	for i := range inst.Prices {
		if inst.Weights[0][i] < 1 || inst.Weights[0][i] > 10 {
			t.Fatalf("weight %d is %f, want within [1, 10]", i, inst.Weights[0][i])
		}
		if inst.Prices[i] < 1 || inst.Prices[i] > 100 {
			t.Fatalf("price %d is %f, want within [1, 100]", i, inst.Prices[i])
		}
		totalWeight += inst.Weights[0][i]
	}

	if inst.Capacities[0] != totalWeight/2 {
		t.Fatalf("capacity is %f, want half the total weight %f", inst.Capacities[0], totalWeight)
	}
}

func TestRandomKnapsackIsSeeded(t *testing.T) {
	a := RandomKnapsack(rand.New(rand.NewSource(7)), 10)
	b := RandomKnapsack(rand.New(rand.NewSource(7)), 10)

	for i := range a.Prices {
		if a.Prices[i] != b.Prices[i] || a.Weights[0][i] != b.Weights[0][i] {
			t.Fatalf("same seed produced different instances at item %d", i)
		}
	}
}

func TestGreedy(t *testing.T) {
	t.Run("PicksBestRatioFirst", func(t *testing.T) {
		inst := RandomKnapsack(rand.New(rand.NewSource(42)), 1)
		inst.Prices = []float64{10, 9}
		inst.Weights = [][]float64{{5, 1}}
		inst.Capacities = []float64{5}

		// item 1 has ratio 9, item 0 only 2; item 0 no longer fits
		if got := Greedy(inst); got != 9 {
			t.Fatalf("got value %f, want 9", got)
		}
	})

	t.Run("SkipsItemsThatNoLongerFit", func(t *testing.T) {
		inst := RandomKnapsack(rand.New(rand.NewSource(42)), 1)
		inst.Prices = []float64{30, 20, 6}
		inst.Weights = [][]float64{{3, 4, 1}}
		inst.Capacities = []float64{4}

		// ratios are 10, 5, 6: item 0 and item 2 fit, item 1 does not
		if got := Greedy(inst); got != 36 {
			t.Fatalf("got value %f, want 36", got)
		}
	})
}
