// Package game ties the solver and the expression evaluator to a round of
// play.
//
// # Core Components
//
// Verify: checks an answer. The numbers it mentions must be the ranks of the
// cards in play, it must parse, and it must evaluate to 24. A wrong value is
// a Result with Solved set to false; wrong numbers are a *UsageMismatchError;
// bad syntax is an *expression.SyntaxError.
//
// Session: the current deal and its hint budget. A correct answer deals new
// cards; any answer restores the hints.
//
// # Hints
//
// Each deal allows DefaultMaxHints hints unless configured otherwise. Earlier
// hints point at the first pair to combine and the final operation of the
// solver's answer; the last one reveals the answer, or NoSolution.
package game
