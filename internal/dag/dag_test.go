// SPDX-License-Identifier: MPL-2.0

package dag

import (
	"slices"
	"testing"
)

func TestSortEmptyGraph(t *testing.T) {
	t.Parallel()
	g := New()
	order, cycle := g.Sort()
	if cycle != nil {
		t.Fatalf("unexpected cycle: %v", cycle)
	}
	if order != nil {
		t.Errorf("expected nil, got %v", order)
	}
}

func TestSortLinearChain(t *testing.T) {
	t.Parallel()
	g := New()
	// A -> B -> C (A must come first, then B, then C)
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	order, cycle := g.Sort()
	if cycle != nil {
		t.Fatalf("unexpected cycle: %v", cycle)
	}
	if !slices.Equal(order, []string{"A", "B", "C"}) {
		t.Errorf("expected [A B C], got %v", order)
	}
}

func TestSortTieBreakByInsertionOrder(t *testing.T) {
	t.Parallel()
	g := New()
	// No edges at all: order must be exactly insertion order.
	g.AddNode("C")
	g.AddNode("A")
	g.AddNode("B")

	order, cycle := g.Sort()
	if cycle != nil {
		t.Fatalf("unexpected cycle: %v", cycle)
	}
	if !slices.Equal(order, []string{"C", "A", "B"}) {
		t.Errorf("expected insertion order [C A B], got %v", order)
	}
}

func TestSortPrefersEarlierInsertedWhenFreed(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddNode("A")
	g.AddNode("B")
	g.AddNode("C")
	// C frees nothing; B is gated on C. After C is emitted, B becomes
	// ready but A (inserted earlier) must still win remaining ties.
	g.AddEdge("C", "B")

	order, cycle := g.Sort()
	if cycle != nil {
		t.Fatalf("unexpected cycle: %v", cycle)
	}
	if !slices.Equal(order, []string{"A", "C", "B"}) {
		t.Errorf("expected [A C B], got %v", order)
	}
}

func TestSortDiamond(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	order, cycle := g.Sort()
	if cycle != nil {
		t.Fatalf("unexpected cycle: %v", cycle)
	}
	if len(order) != 4 || order[0] != "A" || order[3] != "D" {
		t.Errorf("expected A first and D last, got %v", order)
	}
}

func TestSortSimpleCycle(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddNode("C")

	order, cycle := g.Sort()
	if cycle == nil {
		t.Fatal("expected cycle")
	}
	if !slices.Equal(order, []string{"C"}) {
		t.Errorf("acyclic remainder should still be ordered, got %v", order)
	}

	members := slices.Clone(cycle.Members)
	slices.Sort(members)
	if !slices.Equal(members, []string{"A", "B"}) {
		t.Errorf("cycle members = %v, want [A B]", cycle.Members)
	}
	if len(cycle.Path) != 3 || cycle.Path[0] != cycle.Path[len(cycle.Path)-1] {
		t.Errorf("cycle path should close on itself, got %v", cycle.Path)
	}
}

func TestSortCycleWithDependant(t *testing.T) {
	t.Parallel()
	g := New()
	// D is not on the cycle but depends on it; it must be reported as
	// unorderable alongside the cycle members.
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("B", "D")

	order, cycle := g.Sort()
	if cycle == nil {
		t.Fatal("expected cycle")
	}
	if len(order) != 0 {
		t.Errorf("expected empty order, got %v", order)
	}

	members := slices.Clone(cycle.Members)
	slices.Sort(members)
	if !slices.Equal(members, []string{"A", "B", "D"}) {
		t.Errorf("members = %v, want [A B D]", cycle.Members)
	}

	// The extracted path must be a real cycle: closed, and containing
	// only nodes that are actually mutually reachable (A and B).
	if cycle.Path[0] != cycle.Path[len(cycle.Path)-1] {
		t.Errorf("path not closed: %v", cycle.Path)
	}
	for _, n := range cycle.Path {
		if n == "D" {
			t.Errorf("D is not on the cycle itself: %v", cycle.Path)
		}
	}
}

func TestSortSelfLoop(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddEdge("A", "A")

	order, cycle := g.Sort()
	if cycle == nil {
		t.Fatal("expected cycle")
	}
	if len(order) != 0 {
		t.Errorf("expected empty order, got %v", order)
	}
	if !slices.Equal(cycle.Members, []string{"A"}) {
		t.Errorf("members = %v", cycle.Members)
	}
}

func TestCycleError(t *testing.T) {
	t.Parallel()
	c := &Cycle{Members: []string{"A", "B"}, Path: []string{"A", "B", "A"}}
	want := "circular ordering constraint: A -> B -> A"
	if c.Error() != want {
		t.Errorf("Error() = %q, want %q", c.Error(), want)
	}
}
