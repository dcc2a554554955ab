package subgame

import (
	"context"
	"math"
)

const (
	// Per-index discount applied to frequency weights and EV.
	indexDiscount = 0.05
	// Floor on the EV modulation so that no action carries zero signal.
	minEVModulation = 0.1
	// Regret signal of the first action, decayed by regretIndexDiscount per index.
	baseRegret          = 0.1
	regretIndexDiscount = 0.01
)

// HeuristicEngine produces the closed-form approximation of a converged
// regret-matching run over a one-level tree. It is a pure function of the
// tree and the iteration count: it does not iterate, never reads the clock,
// and always returns the same stats for the same inputs.
//
// Earlier actions are favoured slightly over later ones, and the regret
// signal decays towards zero as the iteration count grows.
type HeuristicEngine struct{}

var _ Engine = HeuristicEngine{}

func (HeuristicEngine) Solve(_ context.Context, tree *GameTree, iterations int, _ *BudgetClock) Result {
	if tree == nil || tree.IsEmpty() {
		return Result{}
	}

	n := iterations
	if n < 1 {
		n = 1
	}

	k := tree.NumActions()
	baseFrequency := 1.0 / float64(k)

	weights := make([]float64, k)
	total := 0.0
	for i := range weights {
		weights[i] = math.Max(baseFrequency*modulation(i), 0)
		total += weights[i]
	}

	if total <= epsilon {
		for i := range weights {
			weights[i] = 1.0
		}
		total = float64(k)
	}

	convergence := float64(n-1) / float64(n)
	stats := make([]ActionStat, k)
	for i, action := range tree.Actions {
		stats[i] = ActionStat{
			Label:     action.Label,
			Amount:    action.Amount,
			Frequency: clamp(weights[i]/total, 0, 1),
			EV:        evProxy(tree.EffectiveStackBB, i),
			Regret:    convergence * math.Max(baseRegret-regretIndexDiscount*float64(i), 0),
		}
	}

	return Result{Stats: stats, Iterations: n}
}

// Machine epsilon for float64.
const epsilon = 2.220446049250313e-16

func modulation(i int) float64 {
	return math.Max(1.0-indexDiscount*float64(i), 0)
}

// evProxy is a stack-scaled value that is non-increasing in action index.
func evProxy(effectiveStackBB float64, i int) float64 {
	return (math.Max(effectiveStackBB, 1.0) / 100.0) * math.Max(modulation(i), minEVModulation)
}
