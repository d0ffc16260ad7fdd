package model

// TransportInstance is the raw data of a transportation problem:
// ship from suppliers to consumers at minimum cost, each supplier
// limited by its supply, each consumer demand met exactly.
type TransportInstance struct {
	Supplies []float64
	Demands  []float64
	// Costs[i][j] is the unit shipping cost from supplier i to consumer j.
	Costs [][]float64
}

func (t *TransportInstance) TotalSupply() float64 {
	var total float64
	for _, s := range t.Supplies {
		total += s
	}

	return total
}

func (t *TransportInstance) TotalDemand() float64 {
	var total float64
	for _, d := range t.Demands {
		total += d
	}

	return total
}

// Balanced reports whether total demand can be covered at all.
// The formulation uses "<= supply / == demand" rows, so the
// instance is feasible exactly when demand does not exceed supply.
func (t *TransportInstance) Balanced() bool {
	return t.TotalDemand() <= t.TotalSupply()
}

// KnapsackInstance is a binary knapsack with one or more capacity
// rows. Capacities[k] bounds sum(Weights[k][i] * x_i).
type KnapsackInstance struct {
	Prices     []float64
	Weights    [][]float64
	Capacities []float64
}
