// Package solver finds a way to make 24 from four card ranks.
//
// The search keeps a frontier of terms, starting with one leaf per rank. Each
// step picks a pair, replaces it with one of its sums, differences, products
// or quotients, and recurses until a single term is left. The first term
// equal to 24 within expression.Tolerance wins; there is no memoization and
// no pruning beyond that short-circuit.
//
// Divisions by a value within Tolerance of zero are never tried. Hands whose
// only solutions need such a division are reported as unsolvable.
package solver
