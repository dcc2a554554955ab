package subgame

import (
	"testing"
	"time"
)

func TestBudgetClock_ZeroBudget(t *testing.T) {
	for _, budgetMs := range []int{0, -1, -500} {
		clock := NewBudgetClock(budgetMs)
		if clock.Budget() != 0 {
			t.Errorf("budget %d: expected zero budget, got %v", budgetMs, clock.Budget())
		}
		if !clock.Exhausted() {
			t.Errorf("budget %d: expected clock to be exhausted", budgetMs)
		}
		if clock.RemainingMillis() != 0 {
			t.Errorf("budget %d: expected 0ms remaining, got %d", budgetMs, clock.RemainingMillis())
		}
	}
}

func TestBudgetClock_Remaining(t *testing.T) {
	clock := NewBudgetClock(60000)
	if clock.Exhausted() {
		t.Fatal("fresh clock with a 60s budget should not be exhausted")
	}

	remaining := clock.RemainingMillis()
	if remaining <= 0 || remaining > 60000 {
		t.Errorf("expected remaining in (0, 60000], got %d", remaining)
	}

	if clock.ElapsedMillis() < 0 {
		t.Errorf("expected non-negative elapsed time, got %d", clock.ElapsedMillis())
	}
}

func TestBudgetClock_Expires(t *testing.T) {
	clock := NewBudgetClock(1)
	time.Sleep(5 * time.Millisecond)

	if !clock.Exhausted() {
		t.Error("expected 1ms budget to be exhausted after 5ms")
	}
	if clock.RemainingMillis() != 0 {
		t.Errorf("expected 0ms remaining, got %d", clock.RemainingMillis())
	}
	if clock.Elapsed() < 5*time.Millisecond {
		t.Errorf("expected at least 5ms elapsed, got %v", clock.Elapsed())
	}
}
