package subgame

import (
	"context"

	"github.com/golang/glog"
)

// Source tags responses produced by the subgame solver.
const Source = "subgame"

const (
	minIterationBudgetMs = 50
	msPerIteration       = 10
	minIterations        = 5

	maxExploitability = 0.5
	exploitabilityPot = 1000.0
)

// SolveRequest describes the subgame root to solve.
type SolveRequest struct {
	// StateFingerprint is caller bookkeeping; the solver ignores it.
	StateFingerprint string `json:"state_fingerprint"`
	// GameStateJSON is the serialized game state, see ParseGameState.
	GameStateJSON    string   `json:"game_state_json"`
	BudgetMs         int      `json:"budget_ms"`
	EffectiveStackBB float64  `json:"effective_stack_bb"`
	ActionSet        []string `json:"action_set"`
}

// ActionProb is the wire form of an ActionStat.
type ActionProb struct {
	ActionType string  `json:"action_type"`
	Amount     float64 `json:"amount"`
	Frequency  float64 `json:"frequency"`
	EV         float64 `json:"ev"`
	Regret     float64 `json:"regret"`
}

// SolveResponse is the solved strategy. An empty Actions list means there
// was nothing to solve and the player should fold.
type SolveResponse struct {
	Actions        []ActionProb `json:"actions"`
	Exploitability float64      `json:"exploitability"`
	ComputeTimeMs  int64        `json:"compute_time_ms"`
	Source         string       `json:"source"`
	Iterations     int          `json:"iterations"`
	Truncated      bool         `json:"truncated,omitempty"`
	HoleBucket     string       `json:"hole_bucket,omitempty"`
}

// Solver turns requests into strategies. It holds no per-request state
// and is safe for concurrent use.
type Solver struct {
	engine Engine
}

// NewSolver returns a Solver backed by the given engine.
// A nil engine selects HeuristicEngine.
func NewSolver(engine Engine) *Solver {
	if engine == nil {
		engine = HeuristicEngine{}
	}

	return &Solver{engine: engine}
}

// Solve computes a strategy for the request. Malformed input never fails:
// it degrades to defaults as described on ParseGameState and ParseActionSet.
func (s *Solver) Solve(ctx context.Context, req *SolveRequest) *SolveResponse {
	clock := NewBudgetClock(req.BudgetMs)
	summary := ParseGameState(req.GameStateJSON)
	holeBucket := ""
	if cards := ValidHoleCards(summary.HoleCards); len(cards) > 0 {
		holeBucket = BucketHoleCards(cards)
	}

	specs := ParseActionSet(req.ActionSet, summary, req.EffectiveStackBB)
	if len(specs) == 0 {
		glog.V(1).Infof("Nothing to solve: %d tokens yielded no actions", len(req.ActionSet))
		return &SolveResponse{
			Actions:       []ActionProb{},
			ComputeTimeMs: clock.ElapsedMillis(),
			Source:        Source,
			HoleBucket:    holeBucket,
		}
	}

	tree := NewGameTree(specs, req.EffectiveStackBB)
	iterations := DetermineIterations(req.BudgetMs, tree.NumActions())
	result := s.engine.Solve(ctx, tree, iterations, clock)
	exploitability := clamp(summary.Pot/exploitabilityPot, 0, maxExploitability)

	resp := buildResponse(result, clock, exploitability)
	resp.HoleBucket = holeBucket
	glog.V(1).Infof("Solved %d actions (%s, pot=%.2f): %d iterations, truncated=%v, %dms",
		len(resp.Actions), summary.Street, summary.Pot, resp.Iterations, resp.Truncated, resp.ComputeTimeMs)
	return resp
}

// DetermineIterations sizes the run from the requested budget and the
// branching factor: one iteration per 10ms of budget (budgets below 50ms
// count as 50ms), and never fewer than the number of actions or 5.
func DetermineIterations(budgetMs, actionCount int) int {
	base := max(budgetMs, minIterationBudgetMs) / msPerIteration
	return max(base, actionCount, minIterations)
}

func buildResponse(result Result, clock *BudgetClock, exploitability float64) *SolveResponse {
	actions := make([]ActionProb, len(result.Stats))
	for i, stat := range result.Stats {
		actions[i] = ActionProb{
			ActionType: stat.Label,
			Amount:     stat.Amount,
			Frequency:  stat.Frequency,
			EV:         stat.EV,
			Regret:     stat.Regret,
		}
	}

	return &SolveResponse{
		Actions:        actions,
		Exploitability: exploitability,
		ComputeTimeMs:  clock.ElapsedMillis(),
		Source:         Source,
		Iterations:     result.Iterations,
		Truncated:      result.Truncated,
	}
}
