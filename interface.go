package subgame

import (
	"context"
)

// ActionStat is the solved strategy for one action of the subgame root.
type ActionStat struct {
	Label  string
	Amount float64
	// Frequency with which the action should be played. Frequencies
	// across all actions of a solve sum to 1.
	Frequency float64
	// EV is the expected value of the action, in big blinds.
	EV float64
	// Regret is a non-negative convergence signal; smaller is closer
	// to converged.
	Regret float64
}

// Result is the output of one Engine run.
type Result struct {
	// Stats holds one entry per tree action, in tree order.
	Stats []ActionStat
	// Iterations is the number of iterations actually accounted for.
	Iterations int
	// Truncated is set when the engine stopped before running all of
	// the requested iterations because the budget ran out.
	Truncated bool
}

// Engine computes a mixed strategy over the actions of a GameTree.
type Engine interface {
	// Solve runs up to the given number of iterations over the tree.
	// An empty tree yields an empty Result. For a non-empty tree the
	// returned frequencies must form a probability distribution.
	//
	// The clock is never nil. Implementations are free to ignore it and
	// ctx if they do not iterate; those that do should consult them only
	// between batches of iterations.
	Solve(ctx context.Context, tree *GameTree, iterations int, clock *BudgetClock) Result
}
