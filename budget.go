package subgame

import (
	"time"
)

// BudgetClock tracks the wall-clock budget of a single solve.
// It is created when a request is received and is never shared.
type BudgetClock struct {
	start  time.Time
	budget time.Duration
}

// NewBudgetClock starts a clock with the given budget in milliseconds.
// Negative budgets are treated as zero, meaning no time is allowed.
func NewBudgetClock(budgetMs int) *BudgetClock {
	if budgetMs < 0 {
		budgetMs = 0
	}

	return &BudgetClock{
		start:  time.Now(),
		budget: time.Duration(budgetMs) * time.Millisecond,
	}
}

// Budget returns the total budget the clock was started with.
func (c *BudgetClock) Budget() time.Duration {
	return c.budget
}

// Elapsed returns the time since the clock was started.
func (c *BudgetClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ElapsedMillis returns the elapsed time in whole milliseconds.
func (c *BudgetClock) ElapsedMillis() int64 {
	return c.Elapsed().Milliseconds()
}

// RemainingMillis returns the whole milliseconds left in the budget,
// or 0 if the budget is zero or already spent.
func (c *BudgetClock) RemainingMillis() int64 {
	if c.budget == 0 {
		return 0
	}

	elapsed := c.Elapsed()
	if elapsed >= c.budget {
		return 0
	}

	return (c.budget - elapsed).Milliseconds()
}

// Exhausted reports whether the budget is zero or has been spent.
func (c *BudgetClock) Exhausted() bool {
	return c.budget == 0 || c.Elapsed() >= c.budget
}
