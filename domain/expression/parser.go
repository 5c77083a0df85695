package expression

import (
	"fmt"
	"strconv"
)

// DefaultMaxDepth bounds how deeply parentheses and unary signs may nest.
const DefaultMaxDepth = 64

// Parser is a recursive-descent evaluator for arithmetic expressions:
//
//	Expression := Term (('+' | '-') Term)*
//	Term       := Factor (('*' | '/') Factor)*
//	Factor     := ('+' | '-') Factor | Number | '(' Expression ')'
//	Number     := digit+ ('.' digit+)?
//
// Values are computed during the descent; no tree is built. A Parser is not
// safe for concurrent use, but Evaluate creates a fresh one per call.
type Parser struct {
	input    string
	pos      int
	depth    int
	maxDepth int
}

// Option configures a Parser.
type Option func(Parser) Parser

// WithMaxDepth overrides DefaultMaxDepth. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(p Parser) Parser {
		if depth > 0 {
			p.maxDepth = depth
		}
		return p
	}
}

// NewParser returns a Parser positioned at the start of input.
func NewParser(input string, opts ...Option) *Parser {
	p := Parser{input: input, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		p = opt(p)
	}
	return &p
}

// Evaluate parses expr and returns its value. Malformed text yields a
// *SyntaxError. Division by zero is not an error.
func Evaluate(expr string, opts ...Option) (float64, error) {
	return NewParser(expr, opts...).Parse()
}

// Parse evaluates the whole input. Trailing characters after a complete
// expression are a syntax error.
func (p *Parser) Parse() (float64, error) {
	x, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, p.unexpected()
	}
	return x, nil
}

func (p *Parser) parseExpression() (float64, error) {
	x, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.eatOperator(additive)
		if !ok {
			return x, nil
		}
		y, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		x = op.Apply(x, y)
	}
}

func (p *Parser) parseTerm() (float64, error) {
	x, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.eatOperator(multiplicative)
		if !ok {
			return x, nil
		}
		y, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		x = op.Apply(x, y)
	}
}

func (p *Parser) parseFactor() (float64, error) {
	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()

	if p.eat('+') {
		return p.parseFactor()
	}
	if p.eat('-') {
		x, err := p.parseFactor()
		return -x, err
	}
	if p.eat('(') {
		open := p.pos - 1
		x, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.eat(')') {
			return 0, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("missing closing parenthesis for '(' at position %d", open)}
		}
		return x, nil
	}
	if isDigit(p.peek()) {
		return p.parseNumber()
	}
	return 0, p.unexpected()
}

func (p *Parser) parseNumber() (float64, error) {
	start := p.pos
	p.skipDigits()
	if p.peek() == '.' {
		p.pos++
		if !isDigit(p.peek()) {
			return 0, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("invalid number %q", p.input[start:p.pos])}
		}
		p.skipDigits()
	}
	literal := p.input[start:p.pos]
	x, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", literal), Err: err}
	}
	return x, nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("more than %d nested levels", p.maxDepth), Err: ErrTooDeep}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// eat skips whitespace and consumes ch if it is next.
func (p *Parser) eat(ch byte) bool {
	p.skipSpace()
	if p.peek() == ch {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) eatOperator(ops map[byte]Operator) (Operator, bool) {
	p.skipSpace()
	op, ok := ops[p.peek()]
	if ok {
		p.pos++
	}
	return op, ok
}

// peek returns the current byte, or 0 at end of input.
func (p *Parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *Parser) skipDigits() {
	for isDigit(p.peek()) {
		p.pos++
	}
}

func (p *Parser) unexpected() *SyntaxError {
	if p.pos >= len(p.input) {
		return &SyntaxError{Pos: p.pos, Msg: "unexpected end of input"}
	}
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", p.input[p.pos])}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
