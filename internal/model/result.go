package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Status int

const (
	UNKNOWN Status = iota
	OPTIMAL
	INFEASIBLE
	UNBOUNDED
	TIME_LIMIT
)

func (s Status) String() string {
	switch s {
	case OPTIMAL:
		return "optimal"
	case INFEASIBLE:
		return "infeasible"
	case UNBOUNDED:
		return "unbounded"
	case TIME_LIMIT:
		return "time_limit"
	default:
		return "unknown"
	}
}

type FocusHint int

const (
	FOCUS_BALANCE FocusHint = iota
	FOCUS_PROVE_BOUND
	FOCUS_FIND_FEASIBLE
)

func ParseFocus(s string) (FocusHint, error) {
	switch s {
	case "", "balance":
		return FOCUS_BALANCE, nil
	case "prove_bound":
		return FOCUS_PROVE_BOUND, nil
	case "find_feasible":
		return FOCUS_FIND_FEASIBLE, nil
	default:
		return FOCUS_BALANCE, fmt.Errorf("focus hint %q is not recognized", s)
	}
}

// SolveOptions are pass-through knobs for the external solver.
// Backends apply what their solver supports and log the rest.
type SolveOptions struct {
	TimeLimitSeconds float64
	RelativeGap      float64
	Focus            FocusHint
}

// SolveResult is the terminal outcome of one blocking solve call.
// Values is indexed like Problem.Vars and is only meaningful when
// the status carries a solution (OPTIMAL, or TIME_LIMIT with an
// incumbent).
type SolveResult struct {
	Status    Status    `yaml:"status"`
	Objective float64   `yaml:"objective"`
	Values    []float64 `yaml:"values"`
}

func (r *SolveResult) HasSolution() bool {
	return r.Status == OPTIMAL || (r.Status == TIME_LIMIT && len(r.Values) > 0)
}

func (r *SolveResult) String() string {
	bytes, _ := yaml.Marshal(r)
	return string(bytes[:])
}
