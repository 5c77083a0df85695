// Package expression evaluates the arithmetic a player types as an answer.
//
// Evaluate parses +, -, *, / and parentheses with the usual precedence and
// left associativity; unary signs bind tightest and may repeat ("--5" is 5).
// Whitespace between tokens is ignored. Every failure is a *SyntaxError
// carrying the byte offset where parsing stopped.
//
// ExtractNumbers is a separate lexical scan that lists the integer literals
// an expression mentions, whether or not it is well formed.
//
// Tolerance, ApproxEqual and IsTarget are shared with the solver so that
// both sides agree on when a value "is" 24.
package expression
