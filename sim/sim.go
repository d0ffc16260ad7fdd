package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/jixinwang95/mban-orientation/internal/config"
	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/internal/solver"
	"github.com/jixinwang95/mban-orientation/logging"
	"github.com/jixinwang95/mban-orientation/opt"
	"github.com/jixinwang95/mban-orientation/statistics"
)

type Scenario struct {
	Instances int   `json:"instances"`
	Items     int   `json:"items"`
	Seed      int64 `json:"seed"`
}

var report struct {
	Exact  []float64 `json:"exact"`
	Greedy []float64 `json:"greedy"`
}

var log = logging.Get()

// Start runs a batch of random knapsack instances through the
// exact backend and the greedy baseline and records both
// objectives for offline comparison.
func Start(backend solver.Backend) {
	statistics.Init()

	scenarioPath := config.LabGeneralConfig.Sim.ScenarioPath
	if scenarioPath == "" {
		scenarioPath = "./sim/scenario.json"
	}

	bytes, err := os.ReadFile(scenarioPath)
	if err != nil {
		panic(err)
	}

	var scenario Scenario
	if err := json.Unmarshal(bytes, &scenario); err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(scenario.Seed))
	ctx := context.Background()

	for ind := 0; ind < scenario.Instances; ind++ {
		log.Info().Msgf("processing instance: %d, items: %d", ind, scenario.Items)

		inst := RandomKnapsack(rng, scenario.Items)
		statistics.Change("instances generated", 1)

		prob, err := opt.Knapsack(inst)
		if err != nil {
			panic(err)
		}

		res, err := backend.Solve(ctx, prob, model.SolveOptions{})
		if err != nil {
			panic(err)
		}
		statistics.Change(fmt.Sprintf("solves with status %v", res.Status), 1)

		report.Exact = append(report.Exact, res.Objective)
		report.Greedy = append(report.Greedy, Greedy(inst))
	}

	for i := range report.Exact {
		fmt.Printf("%f, %f\n", report.Exact[i], report.Greedy[i])
	}
	fmt.Print(statistics.Display())

	outputDir := config.LabGeneralConfig.Sim.OutputDir
	if outputDir == "" {
		outputDir = "./sim"
	}

	content, _ := json.MarshalIndent(report, "", " ")
	_ = os.WriteFile(filepath.Join(outputDir, fmt.Sprintf("%s.json", backend.Name())), content, 0644)
}
