// Package cassowary implements the Cassowary incremental linear constraint
// solving algorithm: a dataflow of Variables tied together by weighted
// linear equalities and inequalities, kept optimal and feasible as
// constraints and suggested edit values are added, removed, and changed one
// at a time.
//
// The solving engine itself lives in internal/tableau, generic over any
// comparable variable identity; this package is the concrete, ergonomic
// surface over it — Variable, Expression, Constraint, and Solver — built
// the way a user-facing layout or UI toolkit would consume it.
package cassowary
