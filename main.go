package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jixinwang95/mban-orientation/internal/config"
	"github.com/jixinwang95/mban-orientation/internal/gui"
	"github.com/jixinwang95/mban-orientation/internal/nn"
	"github.com/jixinwang95/mban-orientation/internal/runner"
	"github.com/jixinwang95/mban-orientation/internal/solver"
	"github.com/jixinwang95/mban-orientation/logging"
	"github.com/jixinwang95/mban-orientation/sim"
	"gopkg.in/yaml.v2"
)

var log = logging.Get()

func main() {
	config_file_path := flag.String("config_file", "", "Path to config file")
	flag.Parse()

	fmt.Println(*config_file_path)
	yamlFile, err := os.ReadFile(*config_file_path)
	if err != nil {
		log.Err(err).Msgf("could not load config")
		os.Exit(1)
	}

	if err := yaml.UnmarshalStrict(yamlFile, &config.LabGeneralConfig); err != nil {
		log.Err(err).Msgf("could not load config")
		os.Exit(1)
	}

	var backend solver.Backend

	switch config.LabGeneralConfig.SolverKind {
	case "simplex":
		backend = solver.NewSimplexBackend()
	case "lpsolve":
		backend = solver.NewLPSolveBackend()
	default:
		log.Error().Msg("solver kind is not recognized")
		os.Exit(1)
	}

	if config.LabGeneralConfig.Experiment == "sim" {
		sim.Start(backend)
		return
	}

	run, err := runner.New(backend, nn.NewGorgoniaEngine())
	if err != nil {
		log.Err(err).Msg("could not initiate runner")
		os.Exit(1)
	}

	if err := run.Start(); err != nil {
		log.Err(err).Msg("could not start runner")
		os.Exit(1)
	}

	runnerContext := context.Background()

	runnerBridge, err := run.Run(runnerContext)
	if err != nil {
		log.Err(err).Msg("could not run experiment")
		os.Exit(1)
	}

	gui.SetUp(runnerBridge)
	gui.Run()
}
