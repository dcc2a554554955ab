package subgame

import (
	"math"
)

// GameTreeAction is one edge out of the subgame root.
type GameTreeAction struct {
	Label  string
	Amount float64
}

// GameTree is the flat decision node solved by an Engine: the acting
// player picks exactly one of Actions. Every amount is at most the
// effective stack.
type GameTree struct {
	Actions          []GameTreeAction
	EffectiveStackBB float64
}

// NewGameTree builds the decision node for the given action specs.
// Non-positive amounts are treated as all-in and all amounts are capped
// at the effective stack (at least 1bb).
func NewGameTree(specs []ActionSpec, effectiveStackBB float64) *GameTree {
	stackCap := math.Max(effectiveStackBB, 1.0)
	actions := make([]GameTreeAction, 0, len(specs))
	for _, spec := range specs {
		amount := stackCap
		if spec.Amount > 0 {
			amount = math.Min(spec.Amount, stackCap)
		}

		actions = append(actions, GameTreeAction{
			Label:  spec.Label,
			Amount: amount,
		})
	}

	return &GameTree{
		Actions:          actions,
		EffectiveStackBB: effectiveStackBB,
	}
}

// NumActions returns the number of edges out of the root.
func (t *GameTree) NumActions() int {
	return len(t.Actions)
}

// IsEmpty reports whether the node has no actions, i.e. only folding remains.
func (t *GameTree) IsEmpty() bool {
	return len(t.Actions) == 0
}
