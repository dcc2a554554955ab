package subgame

import (
	"testing"
)

func TestNewGameTree(t *testing.T) {
	specs := []ActionSpec{
		{Label: "a", Amount: 5},
		{Label: "b", Amount: 0},
		{Label: "c", Amount: -3},
		{Label: "d", Amount: 500},
	}

	tree := NewGameTree(specs, 150)
	if tree.IsEmpty() || tree.NumActions() != 4 {
		t.Fatalf("expected 4 actions, got %d", tree.NumActions())
	}

	want := []float64{5, 150, 150, 150}
	for i, action := range tree.Actions {
		if action.Label != specs[i].Label {
			t.Errorf("action %d: expected label %q, got %q", i, specs[i].Label, action.Label)
		}
		if action.Amount != want[i] {
			t.Errorf("action %d: expected amount %v, got %v", i, want[i], action.Amount)
		}
	}

	if tree.EffectiveStackBB != 150 {
		t.Errorf("expected effective stack 150, got %v", tree.EffectiveStackBB)
	}
}

func TestNewGameTree_SmallStack(t *testing.T) {
	tree := NewGameTree([]ActionSpec{{Label: "x", Amount: 0}, {Label: "y", Amount: 0.5}}, 0)
	if tree.Actions[0].Amount != 1 {
		t.Errorf("expected all-in of 1bb, got %v", tree.Actions[0].Amount)
	}
	if tree.Actions[1].Amount != 0.5 {
		t.Errorf("expected 0.5bb, got %v", tree.Actions[1].Amount)
	}
}

func TestNewGameTree_Empty(t *testing.T) {
	if tree := NewGameTree(nil, 100); !tree.IsEmpty() {
		t.Errorf("expected empty tree, got %d actions", tree.NumActions())
	}
}
