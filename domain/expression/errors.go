package expression

import (
	"errors"
	"fmt"
)

// ErrTooDeep is wrapped by a SyntaxError when parentheses or unary signs are
// nested beyond the parser's limit.
var ErrTooDeep = errors.New("expression nested too deeply")

// SyntaxError reports malformed expression text. Pos is the byte offset in
// the input where parsing stopped.
type SyntaxError struct {
	Pos int
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("syntax error at position %d: %s: %v", e.Pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
