package game

import (
	"fmt"
	"slices"

	"github.com/luca-patrignani/card24/domain/card"
	"github.com/luca-patrignani/card24/domain/expression"
)

// Result is the outcome of a well-formed answer that uses the right cards.
// Solved is false when Value differs from 24; that is not an error.
type Result struct {
	Value  float64
	Solved bool
}

func (r Result) String() string {
	if r.Solved {
		return "Congratulations! Your expression evaluates to 24."
	}
	return fmt.Sprintf("Your expression evaluates to %s, not 24.", expression.Format(r.Value))
}

// UsageMismatchError reports an answer whose numbers are not exactly the
// ranks of the cards in play. Both slices are sorted.
type UsageMismatchError struct {
	Expected []int
	Actual   []int
}

func (e *UsageMismatchError) Error() string {
	return fmt.Sprintf("expression does not use the four card values exactly once: cards are %v, you used %v", e.Expected, e.Actual)
}

// Verify checks a player's answer against hand. The numbers mentioned in
// expr must match the hand's ranks as a multiset, otherwise a
// *UsageMismatchError is returned without evaluating. A malformed expression
// yields an *expression.SyntaxError.
func Verify(hand card.Hand, expr string, opts ...expression.Option) (Result, error) {
	cardRanks := hand.Sorted()
	used := expression.ExtractNumbers(expr)
	slices.Sort(used)
	if !slices.Equal(cardRanks, used) {
		if used == nil {
			used = []int{}
		}
		return Result{}, &UsageMismatchError{Expected: cardRanks, Actual: used}
	}
	v, err := expression.Evaluate(expr, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Solved: expression.IsTarget(v)}, nil
}
