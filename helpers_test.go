package subgame

import (
	"math"
	"testing"
)

const tol = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func checkDistribution(t *testing.T, stats []ActionStat) {
	t.Helper()
	total := 0.0
	for _, s := range stats {
		if s.Frequency < 0 || s.Frequency > 1 {
			t.Errorf("%s: frequency %v outside [0, 1]", s.Label, s.Frequency)
		}
		total += s.Frequency
	}

	if len(stats) > 0 && !approxEqual(total, 1.0) {
		t.Errorf("expected frequencies to sum to 1, got %v", total)
	}
}

func specsOfSize(n int) []ActionSpec {
	specs := make([]ActionSpec, n)
	for i := range specs {
		specs[i] = ActionSpec{Label: formatLabel("abs", float64(i+1)), Amount: float64(i + 1)}
	}
	return specs
}
