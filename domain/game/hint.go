package game

import (
	"fmt"

	"github.com/luca-patrignani/card24/domain/expression"
	"github.com/luca-patrignani/card24/domain/solver"
)

// NoSolution is the hint text for a deal that cannot make 24.
const NoSolution = "No solution available."

// Hint is one step of help for the current deal. The last hint of a deal
// reveals the full solution.
type Hint struct {
	Level int
	Text  string
	Final bool
}

// Hint returns the next hint for the current deal, or ErrNoHintsLeft once
// the budget is spent.
func (s *Session) Hint() (Hint, error) {
	if s.hintsUsed >= s.maxHints {
		return Hint{}, ErrNoHintsLeft
	}
	level := s.hintsUsed
	s.hintsUsed++
	h := Hint{Level: level, Final: s.hintsUsed == s.maxHints}

	if !s.searched {
		s.solution, _ = solver.SolveTree(s.hand)
		s.searched = true
	}
	switch {
	case s.solution == nil:
		h.Text = NoSolution
	case h.Final:
		h.Text = "Solution: " + s.solution.String()
	default:
		h.Text = partialHint(s.solution, level)
	}
	return h, nil
}

// partialHint describes part of a solution without giving it away.
func partialHint(t *solver.Term, level int) string {
	op, _ := t.Operator()
	switch level {
	case 0:
		a, b := firstPair(t)
		return fmt.Sprintf("Try combining %d and %d first.", a.Rank(), b.Rank())
	case 1:
		return fmt.Sprintf("The last operation is %s.", op.Name())
	default:
		l, r := t.Operands()
		return fmt.Sprintf("The last operation is %s, applied to %s and %s.", op.Name(), expression.Format(l.Value), expression.Format(r.Value))
	}
}

// firstPair returns the leftmost operation whose operands are both cards.
// Every inner node has one below it, so the search always succeeds.
func firstPair(t *solver.Term) (*solver.Term, *solver.Term) {
	l, r := t.Operands()
	if l.IsLeaf() && r.IsLeaf() {
		return l, r
	}
	if !l.IsLeaf() {
		return firstPair(l)
	}
	return firstPair(r)
}
