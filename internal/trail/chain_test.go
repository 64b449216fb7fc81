package trail

import (
	"context"
	"testing"
)

func TestChainMoveSelection(t *testing.T) {
	b := NewBuilder(testLogger(), sampleFS(), Options{})
	chain, err := b.Build(context.Background(), "/home/alice/projects")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// Leaf order: alpha, mid, zeta.

	steps := []struct {
		delta     int
		wantMoved bool
		wantName  string
	}{
		{-1, false, "alpha"},
		{1, true, "mid"},
		{5, true, "zeta"},
		{1, false, "zeta"},
		{-2, true, "alpha"},
	}

	for i, step := range steps {
		moved := chain.MoveSelection(step.delta)
		if moved != step.wantMoved {
			t.Errorf("step %d: moved = %v, want %v", i, moved, step.wantMoved)
		}
		item, _ := chain.Selected()
		if item.Name != step.wantName {
			t.Errorf("step %d: selected %q, want %q", i, item.Name, step.wantName)
		}
	}
}

func TestEmptyChain(t *testing.T) {
	chain := &Chain{}
	if chain.Leaf() != nil {
		t.Error("Leaf() of empty chain should be nil")
	}
	if _, ok := chain.Selected(); ok {
		t.Error("Selected() of empty chain should report false")
	}
	if chain.MoveSelection(1) {
		t.Error("MoveSelection on empty chain should report false")
	}
}
