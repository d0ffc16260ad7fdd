package config

type GeneralConfig struct {
	Name       string `yaml:"name"`
	Experiment string `yaml:"experiment"` // transport, knapsack, sentiment or sim
	SolverKind string `yaml:"solver"`

	Solve   SolveConfig   `yaml:"solve"`
	Dataset DatasetConfig `yaml:"dataset"`
	Train   TrainConfig   `yaml:"train"`
	Sim     SimConfig     `yaml:"sim"`

	PlotDir string `yaml:"plot_dir"`
}

type SolveConfig struct {
	TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
	RelativeGap      float64 `yaml:"relative_gap"`
	Focus            string  `yaml:"focus"` // balance, prove_bound or find_feasible
}

type DatasetConfig struct {
	Path      string `yaml:"path"`
	VocabSize int    `yaml:"vocab_size"`
	MaxLen    int    `yaml:"max_len"`
}

type TrainConfig struct {
	Optimizer       string  `yaml:"optimizer"` // sgd, momentum or adam
	LearnRate       float64 `yaml:"learn_rate"`
	BatchSize       int     `yaml:"batch_size"`
	Epochs          int     `yaml:"epochs"`
	ValidationSplit float64 `yaml:"validation_split"`
	Seed            int64   `yaml:"seed"`
	EmbedDim        int     `yaml:"embed_dim"`
	HiddenUnits     int     `yaml:"hidden_units"`
}

type SimConfig struct {
	ScenarioPath string `yaml:"scenario_path"`
	OutputDir    string `yaml:"output_dir"`
}

var LabGeneralConfig GeneralConfig
