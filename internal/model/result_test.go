package model

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{OPTIMAL, "optimal"},
		{INFEASIBLE, "infeasible"},
		{UNBOUNDED, "unbounded"},
		{TIME_LIMIT, "time_limit"},
		{UNKNOWN, "unknown"},
	}

	for _, test := range tests {
		if got := test.status.String(); got != test.want {
			t.Fatalf("got %q, wanted %q", got, test.want)
		}
	}
}

func TestParseFocus(t *testing.T) {
	tests := []struct {
		in      string
		want    FocusHint
		wantErr bool
	}{
		{"", FOCUS_BALANCE, false},
		{"balance", FOCUS_BALANCE, false},
		{"prove_bound", FOCUS_PROVE_BOUND, false},
		{"find_feasible", FOCUS_FIND_FEASIBLE, false},
		{"speed", FOCUS_BALANCE, true},
	}

	for _, test := range tests {
		got, err := ParseFocus(test.in)
		if (err != nil) != test.wantErr {
			t.Fatalf("ParseFocus(%q) error = %v", test.in, err)
		}
		if got != test.want {
			t.Fatalf("ParseFocus(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestHasSolution(t *testing.T) {
	tests := []struct {
		name string
		res  SolveResult
		want bool
	}{
		{"Optimal", SolveResult{Status: OPTIMAL}, true},
		{"Infeasible", SolveResult{Status: INFEASIBLE}, false},
		{"TimeLimitWithIncumbent", SolveResult{Status: TIME_LIMIT, Values: []float64{1}}, true},
		{"TimeLimitWithoutIncumbent", SolveResult{Status: TIME_LIMIT}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.res.HasSolution(); got != test.want {
				t.Fatalf("got %v, wanted %v", got, test.want)
			}
		})
	}
}
