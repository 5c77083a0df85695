package solver

import (
	"strconv"
	"strings"

	"github.com/luca-patrignani/card24/domain/expression"
)

// Term is a node of the expression tree built during the search. A leaf
// holds one card rank; an inner node combines two terms with an operator.
// Terms are immutable once built and may be shared between frontiers.
type Term struct {
	Value float64
	op    expression.Operator
	left  *Term
	right *Term
	rank  int
}

// Leaf returns the term for a single card rank.
func Leaf(rank int) *Term {
	return &Term{Value: float64(rank), rank: rank}
}

// Combine returns the term left op right, valued by op.Apply.
func Combine(op expression.Operator, left, right *Term) *Term {
	return &Term{
		Value: op.Apply(left.Value, right.Value),
		op:    op,
		left:  left,
		right: right,
	}
}

// IsLeaf reports whether t is a single card rank.
func (t *Term) IsLeaf() bool {
	return t.left == nil
}

// Rank returns the card rank of a leaf, or 0 for an inner node.
func (t *Term) Rank() int {
	if !t.IsLeaf() {
		return 0
	}
	return t.rank
}

// Operator returns the operator of an inner node.
func (t *Term) Operator() (expression.Operator, bool) {
	return t.op, !t.IsLeaf()
}

// Operands returns the left and right children; both are nil for a leaf.
func (t *Term) Operands() (*Term, *Term) {
	return t.left, t.right
}

// Eval recomputes the value from the leaves.
func (t *Term) Eval() float64 {
	if t.IsLeaf() {
		return float64(t.rank)
	}
	return t.op.Apply(t.left.Eval(), t.right.Eval())
}

// Ranks lists the leaf ranks from left to right.
func (t *Term) Ranks() []int {
	if t.IsLeaf() {
		return []int{t.rank}
	}
	return append(t.left.Ranks(), t.right.Ranks()...)
}

// String renders the term with every inner node parenthesized, e.g.
// "((8-4)*(3+3))".
func (t *Term) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Term) write(b *strings.Builder) {
	if t.IsLeaf() {
		b.WriteString(strconv.Itoa(t.rank))
		return
	}
	b.WriteByte('(')
	t.left.write(b)
	b.WriteByte(t.op.Symbol())
	t.right.write(b)
	b.WriteByte(')')
}
