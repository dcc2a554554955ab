// Package policy implements the regret table of a single decision node.
package policy

import (
	"github.com/timpalpant/subgame/internal/f64"
)

// Policy accumulates regrets and strategy weights for one decision node
// and derives the next strategy from them by regret matching.
type Policy struct {
	currentStrategy       []float64
	currentStrategyWeight float64

	regretSum   []float64
	strategySum []float64
}

// New returns a Policy for a node with the given number of actions,
// starting from the uniform strategy.
func New(nActions int) *Policy {
	return &Policy{
		currentStrategy: uniformDist(nActions),
		regretSum:       make([]float64, nActions),
		strategySum:     make([]float64, nActions),
	}
}

func (p *Policy) NumActions() int {
	return len(p.regretSum)
}

// GetStrategy returns the strategy for the current iteration.
// The returned slice is owned by the Policy.
func (p *Policy) GetStrategy() []float64 {
	return p.currentStrategy
}

func (p *Policy) AddRegret(instantaneousRegrets []float64) {
	f64.Add(p.regretSum, instantaneousRegrets)
}

// AddStrategyWeight records the reach weight with which the current
// strategy was played this iteration.
func (p *Policy) AddStrategyWeight(w float64) {
	p.currentStrategyWeight += w
}

// NextStrategy folds the current strategy into the strategy sum, applies
// the discount factors and recomputes the current strategy.
func (p *Policy) NextStrategy(discountPositiveRegret, discountNegativeRegret, discountStrategySum float64) {
	if discountStrategySum != 1.0 {
		f64.ScalUnitary(discountStrategySum, p.strategySum)
	}

	f64.AxpyUnitary(p.currentStrategyWeight, p.currentStrategy, p.strategySum)
	discountRegrets(p.regretSum, discountPositiveRegret, discountNegativeRegret)
	p.regretMatching()
	p.currentStrategyWeight = 0.0
}

// GetAverageStrategy returns the normalized strategy sum, or the uniform
// strategy if nothing has been accumulated yet.
func (p *Policy) GetAverageStrategy() []float64 {
	total := f64.Sum(p.strategySum)
	if total <= 0 {
		return uniformDist(p.NumActions())
	}

	avgStrat := make([]float64, len(p.strategySum))
	f64.ScalUnitaryTo(avgStrat, 1.0/total, p.strategySum)
	return avgStrat
}

// GetPositiveRegret returns the accumulated regret of each action,
// with negative values clipped to zero.
func (p *Policy) GetPositiveRegret() []float64 {
	result := append([]float64(nil), p.regretSum...)
	makePositive(result)
	return result
}

func (p *Policy) regretMatching() {
	copy(p.currentStrategy, p.regretSum)
	makePositive(p.currentStrategy)
	total := f64.Sum(p.currentStrategy)
	if total > 0 {
		f64.ScalUnitary(1.0/total, p.currentStrategy)
		return
	}

	for i := range p.currentStrategy {
		p.currentStrategy[i] = 1.0 / float64(len(p.currentStrategy))
	}
}

func discountRegrets(regrets []float64, positive, negative float64) {
	if positive == 1.0 && negative == 1.0 {
		return
	}

	for i, x := range regrets {
		if x > 0 {
			regrets[i] *= positive
		} else if x < 0 {
			regrets[i] *= negative
		}
	}
}

func uniformDist(n int) []float64 {
	result := make([]float64, n)
	if n == 0 {
		return result
	}

	p := 1.0 / float64(n)
	for i := range result {
		result[i] = p
	}
	return result
}

func makePositive(v []float64) {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0.0
		}
	}
}
