package policy

import (
	"math"
	"testing"
)

func assertDist(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("entry %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestPolicy_Uniform(t *testing.T) {
	p := New(4)
	assertDist(t, p.GetStrategy(), []float64{0.25, 0.25, 0.25, 0.25})
	assertDist(t, p.GetAverageStrategy(), []float64{0.25, 0.25, 0.25, 0.25})
	if p.NumActions() != 4 {
		t.Errorf("expected 4 actions, got %d", p.NumActions())
	}
}

func TestPolicy_RegretMatching(t *testing.T) {
	p := New(3)
	p.AddRegret([]float64{3, 1, -2})
	p.AddStrategyWeight(1.0)
	p.NextStrategy(1, 1, 1)

	assertDist(t, p.GetStrategy(), []float64{0.75, 0.25, 0})
	assertDist(t, p.GetAverageStrategy(), []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	assertDist(t, p.GetPositiveRegret(), []float64{3, 1, 0})

	p.AddStrategyWeight(1.0)
	p.NextStrategy(1, 1, 1)
	assertDist(t, p.GetAverageStrategy(), []float64{(1.0/3 + 0.75) / 2, (1.0/3 + 0.25) / 2, (1.0 / 3) / 2})
}

func TestPolicy_NoPositiveRegret(t *testing.T) {
	p := New(2)
	p.AddRegret([]float64{-1, -4})
	p.NextStrategy(1, 1, 1)
	assertDist(t, p.GetStrategy(), []float64{0.5, 0.5})
}

func TestPolicy_DiscountNegativeRegret(t *testing.T) {
	p := New(2)
	p.AddRegret([]float64{2, -4})
	p.NextStrategy(0.5, 0, 1)
	assertDist(t, p.GetPositiveRegret(), []float64{1, 0})

	// With negative regret discarded, a small positive regret takes over.
	p.AddRegret([]float64{-1.5, 0.5})
	p.NextStrategy(1, 1, 1)
	assertDist(t, p.GetStrategy(), []float64{0, 1})
}
