package expression

import "fmt"

// Operator is one of the four binary arithmetic operations.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// Operators lists every operator in declaration order.
var Operators = []Operator{Add, Sub, Mul, Div}

// Symbol returns the character that denotes the operator in an expression.
func (o Operator) Symbol() byte {
	switch o {
	case Add:
		return '+'
	case Sub:
		return '-'
	case Mul:
		return '*'
	case Div:
		return '/'
	default:
		return '?'
	}
}

func (o Operator) String() string {
	return string(o.Symbol())
}

// Apply computes a o b. Division is not guarded: a zero divisor yields an
// infinity or NaN.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	default:
		panic(fmt.Sprintf("unknown operator %d", o))
	}
}

// Name returns a lowercase English name, used in hints.
func (o Operator) Name() string {
	switch o {
	case Add:
		return "addition"
	case Sub:
		return "subtraction"
	case Mul:
		return "multiplication"
	case Div:
		return "division"
	default:
		return "unknown"
	}
}

// additive and multiplicative map a symbol to its operator at each
// precedence level.
var (
	additive       = map[byte]Operator{'+': Add, '-': Sub}
	multiplicative = map[byte]Operator{'*': Mul, '/': Div}
)
