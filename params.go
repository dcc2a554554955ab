package subgame

import (
	"math"
)

// DiscountParams configure how the iterative engine weights regrets and
// strategy sums from earlier iterations. The zero value corresponds to
// vanilla regret matching.
type DiscountParams struct {
	UseRegretMatchingPlus bool    // CFR+
	LinearWeighting       bool    // Linear CFR
	DiscountAlpha         float64 // Discounted CFR
	DiscountBeta          float64 // Discounted CFR
	DiscountGamma         float64 // Discounted CFR
}

// GetDiscountFactors returns the multipliers applied after iteration iter
// to positive regrets, negative regrets and the strategy sum.
func (p DiscountParams) GetDiscountFactors(iter int) (positive, negative, sum float64) {
	positive, negative, sum = 1.0, 1.0, 1.0
	t := float64(iter)

	// See: https://arxiv.org/pdf/1809.04040.pdf
	if p.LinearWeighting {
		sum = t / (t + 1.0)
	}

	if p.UseRegretMatchingPlus {
		negative = 0.0
	}

	if p.DiscountAlpha != 0 {
		x := math.Pow(t, p.DiscountAlpha)
		positive = x / (x + 1.0)
	}

	if p.DiscountBeta != 0 {
		x := math.Pow(t, p.DiscountBeta)
		negative = x / (x + 1.0)
	}

	if p.DiscountGamma != 0 {
		sum = math.Pow(t/(t+1.0), p.DiscountGamma)
	}

	return
}
