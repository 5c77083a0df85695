package solver

import (
	"github.com/luca-patrignani/card24/domain/card"
	"github.com/luca-patrignani/card24/domain/expression"
)

// Solve searches for an expression that uses every rank of hand exactly once
// and evaluates to 24. It returns the rendered expression, or false when no
// combination reaches 24. The result is deterministic for a given hand.
func Solve(hand card.Hand) (string, bool) {
	t, ok := SolveTree(hand)
	if !ok {
		return "", false
	}
	return t.String(), true
}

// SolveTree is Solve returning the expression tree instead of its text.
func SolveTree(hand card.Hand) (*Term, bool) {
	var s searcher
	return s.solve(hand[:])
}

// searcher carries optional instrumentation through one search.
type searcher struct {
	// visit, when set, is called with every combined term.
	visit func(*Term)
	calls int
}

func (s *searcher) solve(ranks []int) (*Term, bool) {
	frontier := make([]*Term, len(ranks))
	for i, r := range ranks {
		frontier[i] = Leaf(r)
	}
	t := s.search(frontier)
	return t, t != nil
}

// search reduces the frontier one pair at a time, depth first, and returns
// the first single term equal to 24. Pairs are tried in ascending (i, j)
// order and operations in the order given by candidates.
func (s *searcher) search(frontier []*Term) *Term {
	s.calls++
	if len(frontier) == 1 {
		if expression.IsTarget(frontier[0].Value) {
			return frontier[0]
		}
		return nil
	}
	for i := 0; i < len(frontier); i++ {
		for j := i + 1; j < len(frontier); j++ {
			for _, combined := range candidates(frontier[i], frontier[j]) {
				if s.visit != nil {
					s.visit(combined)
				}
				if t := s.search(reduce(frontier, i, j, combined)); t != nil {
					return t
				}
			}
		}
	}
	return nil
}

// candidates returns a+b, a-b, b-a, a*b, a/b and b/a, skipping a division
// whose divisor is within Tolerance of zero.
func candidates(a, b *Term) []*Term {
	out := make([]*Term, 0, 6)
	out = append(out,
		Combine(expression.Add, a, b),
		Combine(expression.Sub, a, b),
		Combine(expression.Sub, b, a),
		Combine(expression.Mul, a, b),
	)
	if !expression.NearZero(b.Value) {
		out = append(out, Combine(expression.Div, a, b))
	}
	if !expression.NearZero(a.Value) {
		out = append(out, Combine(expression.Div, b, a))
	}
	return out
}

// reduce returns a new frontier without the terms at i and j and with
// combined appended. The input slice is left untouched.
func reduce(frontier []*Term, i, j int, combined *Term) []*Term {
	next := make([]*Term, 0, len(frontier)-1)
	for k, t := range frontier {
		if k != i && k != j {
			next = append(next, t)
		}
	}
	return append(next, combined)
}
