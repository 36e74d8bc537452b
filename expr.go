package cassowary

import (
	"slices"

	"github.com/go-tableau/cassowary/internal/tableau"
)

// Term is a coefficient applied to a Variable.
type Term = tableau.Term[*Variable]

// Expression is a constant plus a sum of Terms.
type Expression = tableau.Expression[*Variable]

// T returns the Term coeff*v.
func (v *Variable) T(coeff float64) Term {
	return Term{Coeff: coeff, Var: v}
}

// NewExpression builds an Expression directly from a constant and terms.
func NewExpression(constant float64, terms ...Term) Expression {
	return Expression{Constant: constant, Terms: terms}
}

// constant returns the Expression equal to the constant c alone.
func constant(c float64) Expression {
	return Expression{Constant: c}
}

// negate returns -e: every term negated, and the constant negated.
func negate(e Expression) Expression {
	e.Terms = slices.Clone(e.Terms)
	e.Constant = -e.Constant
	for i := range e.Terms {
		e.Terms[i].Coeff = -e.Terms[i].Coeff
	}
	return e
}

// Add returns e + other.
func Add(e, other Expression) Expression {
	e.Terms = append(slices.Clone(e.Terms), other.Terms...)
	e.Constant += other.Constant
	return e
}

// AddConstant returns e + c.
func AddConstant(e Expression, c float64) Expression {
	e.Constant += c
	return e
}

// AddTerm returns e + t.
func AddTerm(e Expression, t Term) Expression {
	e.Terms = append(slices.Clone(e.Terms), t)
	return e
}

// Sub returns e - other.
func Sub(e, other Expression) Expression {
	return Add(e, negate(other))
}

// SubConstant returns e - c.
func SubConstant(e Expression, c float64) Expression {
	e.Constant -= c
	return e
}

// SubTerm returns e - t.
func SubTerm(e Expression, t Term) Expression {
	return AddTerm(e, Term{Coeff: -t.Coeff, Var: t.Var})
}

// MulConstant returns e scaled by c.
func MulConstant(e Expression, c float64) Expression {
	e.Terms = slices.Clone(e.Terms)
	e.Constant *= c
	for i := range e.Terms {
		e.Terms[i].Coeff *= c
	}
	return e
}

// DivConstant returns e scaled by 1/c.
func DivConstant(e Expression, c float64) Expression {
	return MulConstant(e, 1/c)
}
