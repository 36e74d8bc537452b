package tableau

import "math"

// Var is the identity contract the core requires of a caller-owned
// variable: stable equality suitable for use as a map key, and a setter the
// core drives during UpdateVariables.
type Var interface {
	comparable
	SetValue(value float64)
}

// Op is a constraint's relational operator.
type Op uint8

const (
	LTE Op = iota
	GTE
	EQ
)

// Required is the distinguished strength sentinel: a constraint at this
// strength must hold exactly, and its violation is an error, not a
// weighted penalty. It is represented as positive infinity so that it can
// never be produced by clipping an ordinary finite strength upward, and so
// that "strength < Required" holds for every finite strength without a
// separate identity check.
//
// math.Inf is a function, not a constant expression, so this cannot be a
// const; treat it as immutable by convention.
var Required = math.Inf(1)

// Term is one (coefficient, variable) pair in an Expression.
type Term[V Var] struct {
	Coeff float64
	Var   V
}

// Expression is a scalar constant plus an ordered sequence of terms.
// Duplicate variables within one Expression are permitted and compose
// additively when the constraint is built.
type Expression[V Var] struct {
	Constant float64
	Terms    []Term[V]
}

// Constraint is an immutable {expression, operator, strength}. Identity is
// by pointer: two Constraints with identical fields are still distinct
// constraints.
type Constraint[V Var] struct {
	Expr     Expression[V]
	Op       Op
	Strength float64
}
