package solver

import (
	"math"
	"slices"
	"testing"

	"github.com/luca-patrignani/card24/domain/card"
	"github.com/luca-patrignani/card24/domain/expression"
)

func checkSolution(t *testing.T, hand card.Hand, solution string) {
	t.Helper()
	v, err := expression.Evaluate(solution)
	if err != nil {
		t.Fatalf("solution %q does not parse: %v", solution, err)
	}
	if !expression.IsTarget(v) {
		t.Fatalf("solution %q evaluates to %v", solution, v)
	}
	used := expression.ExtractNumbers(solution)
	slices.Sort(used)
	if !slices.Equal(used, hand.Sorted()) {
		t.Fatalf("solution %q uses %v, hand is %v", solution, used, hand.Sorted())
	}
}

func TestSolve(t *testing.T) {
	hands := []card.Hand{
		{4, 6, 8, 3},
		{3, 8, 3, 8},
		{1, 5, 5, 5},
		{12, 12, 12, 12},
		{13, 11, 1, 1},
		{1, 2, 3, 4},
	}
	for _, hand := range hands {
		solution, ok := Solve(hand)
		if !ok {
			t.Fatalf("expected a solution for %v", hand)
		}
		checkSolution(t, hand, solution)
	}
}

func TestSolve_NotFound(t *testing.T) {
	for _, hand := range []card.Hand{{1, 1, 1, 1}, {1, 1, 1, 2}} {
		if solution, ok := Solve(hand); ok {
			t.Fatalf("expected no solution for %v, got %s", hand, solution)
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	hand := card.Hand{4, 6, 8, 3}
	first, _ := Solve(hand)
	for i := 0; i < 10; i++ {
		if again, _ := Solve(hand); again != first {
			t.Fatalf("expected %s, got %s", first, again)
		}
	}
}

func TestSolveTree(t *testing.T) {
	hand := card.Hand{3, 8, 3, 8}
	tree, ok := SolveTree(hand)
	if !ok {
		t.Fatal("expected a solution")
	}
	if !expression.IsTarget(tree.Eval()) || !expression.IsTarget(tree.Value) {
		t.Fatalf("tree %s valued %v", tree, tree.Value)
	}
	ranks := tree.Ranks()
	slices.Sort(ranks)
	if !slices.Equal(ranks, hand.Sorted()) {
		t.Fatalf("tree uses %v", ranks)
	}
	if _, ok := tree.Operator(); !ok {
		t.Fatal("root of a four-card solution must be an operation")
	}
}

func TestSearch_RoundTrip(t *testing.T) {
	visited := 0
	s := searcher{visit: func(term *Term) {
		visited++
		v, err := expression.Evaluate(term.String())
		if err != nil {
			t.Fatalf("term %s does not parse: %v", term, err)
		}
		if !expression.ApproxEqual(v, term.Value) {
			t.Fatalf("term %s re-evaluates to %v, stored %v", term, v, term.Value)
		}
		if !expression.ApproxEqual(term.Eval(), term.Value) {
			t.Fatalf("term %s tree value %v, stored %v", term, term.Eval(), term.Value)
		}
	}}
	if _, ok := s.solve([]int{1, 1, 1, 1}); ok {
		t.Fatal("expected no solution")
	}
	if visited == 0 {
		t.Fatal("visitor never called")
	}
}

func TestSearch_Bounded(t *testing.T) {
	// 6 pairs * 6 ops at 4 terms, 3 * 6 at 3 terms, 1 * 6 at 2 terms.
	const maxCalls = 1 + 36*(1+18*(1+6))
	var s searcher
	if _, ok := s.solve([]int{1, 1, 1, 1}); ok {
		t.Fatal("expected no solution")
	}
	if s.calls == 0 || s.calls > maxCalls {
		t.Fatalf("unexpected number of calls %d", s.calls)
	}
}

func TestCandidates_DivisionGuard(t *testing.T) {
	zero := Combine(expression.Sub, Leaf(3), Leaf(3))
	got := candidates(Leaf(5), zero)
	if len(got) != 5 {
		t.Fatalf("expected 5 candidates, got %d", len(got))
	}
	for _, c := range got {
		if math.IsInf(c.Value, 0) || math.IsNaN(c.Value) {
			t.Fatalf("candidate %s divides by zero", c)
		}
	}
	order := []string{"(5+2)", "(5-2)", "(2-5)", "(5*2)", "(5/2)", "(2/5)"}
	all := candidates(Leaf(5), Leaf(2))
	for i, c := range all {
		if c.String() != order[i] {
			t.Fatalf("candidate %d: expected %s, got %s", i, order[i], c)
		}
	}
}

func TestReduce(t *testing.T) {
	frontier := []*Term{Leaf(1), Leaf(2), Leaf(3), Leaf(4)}
	combined := Combine(expression.Add, frontier[1], frontier[3])
	next := reduce(frontier, 1, 3, combined)
	if len(next) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(next))
	}
	if next[0].Rank() != 1 || next[1].Rank() != 3 || next[2] != combined {
		t.Fatalf("unexpected frontier %v", next)
	}
	if len(frontier) != 4 || frontier[1].Rank() != 2 {
		t.Fatal("input frontier modified")
	}
}

func TestTermString(t *testing.T) {
	a, b := Leaf(8), Leaf(3)
	term := Combine(expression.Mul, Combine(expression.Sub, b, a), Leaf(12))
	if term.String() != "((3-8)*12)" {
		t.Fatalf("unexpected rendering %s", term)
	}
	if term.Value != -60 {
		t.Fatalf("unexpected value %v", term.Value)
	}
	if l, r := Leaf(7).Operands(); l != nil || r != nil {
		t.Fatal("leaf must have no operands")
	}
}
