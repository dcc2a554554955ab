package subgame

import (
	"context"

	"github.com/golang/glog"

	"github.com/timpalpant/subgame/internal/f64"
	"github.com/timpalpant/subgame/internal/policy"
)

// DefaultBatchSize is the number of iterations run between budget checks.
const DefaultBatchSize = 16

// RegretMatchingEngine runs regret matching over the root of the tree,
// using the stack-scaled value proxy of each action as its utility.
//
// Unlike HeuristicEngine it actually iterates, so it polls the budget
// clock (and ctx) between batches and stops early once either is done.
// At least one batch is always run so that a strategy is returned.
type RegretMatchingEngine struct {
	params    DiscountParams
	batchSize int
}

var _ Engine = &RegretMatchingEngine{}

// NewRegretMatchingEngine returns an engine using the given discounting
// scheme. A non-positive batchSize selects DefaultBatchSize.
func NewRegretMatchingEngine(params DiscountParams, batchSize int) *RegretMatchingEngine {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &RegretMatchingEngine{
		params:    params,
		batchSize: batchSize,
	}
}

func (e *RegretMatchingEngine) Solve(ctx context.Context, tree *GameTree, iterations int, clock *BudgetClock) Result {
	if tree == nil || tree.IsEmpty() {
		return Result{}
	}

	n := iterations
	if n < 1 {
		n = 1
	}

	k := tree.NumActions()
	utilities := make([]float64, k)
	for i := range utilities {
		utilities[i] = evProxy(tree.EffectiveStackBB, i)
	}

	p := policy.New(k)
	regrets := make([]float64, k)
	iter := 0
	truncated := false
	for iter < n {
		if iter > 0 && (clock.Exhausted() || ctx.Err() != nil) {
			truncated = true
			break
		}

		batch := min(e.batchSize, n-iter)
		for j := 0; j < batch; j++ {
			iter++
			e.runIteration(p, utilities, regrets, iter)
		}

		glog.V(2).Infof("Regret matching: %d/%d iterations, %dms remaining",
			iter, n, clock.RemainingMillis())
	}

	avgStrat := p.GetAverageStrategy()
	positiveRegret := p.GetPositiveRegret()
	stats := make([]ActionStat, k)
	for i, action := range tree.Actions {
		stats[i] = ActionStat{
			Label:     action.Label,
			Amount:    action.Amount,
			Frequency: clamp(avgStrat[i], 0, 1),
			EV:        utilities[i],
			Regret:    positiveRegret[i] / float64(iter),
		}
	}

	return Result{
		Stats:      stats,
		Iterations: iter,
		Truncated:  truncated,
	}
}

func (e *RegretMatchingEngine) runIteration(p *policy.Policy, utilities, regrets []float64, iter int) {
	strat := p.GetStrategy()
	nodeValue := f64.DotUnitary(strat, utilities)
	for i, u := range utilities {
		regrets[i] = u - nodeValue
	}

	p.AddRegret(regrets)
	p.AddStrategyWeight(1.0)
	discountPos, discountNeg, discountSum := e.params.GetDiscountFactors(iter)
	p.NextStrategy(discountPos, discountNeg, discountSum)
}
