package cassowary

import "github.com/go-tableau/cassowary/internal/tableau"

// Op is a constraint's relational operator.
type Op = tableau.Op

const (
	LTE = tableau.LTE
	GTE = tableau.GTE
	EQ  = tableau.EQ
)

// Constraint is an immutable linear relation over Variables: Expr Op 0, at
// the given Strength. Build one with NewConstraint or the WeightedRelation
// fluent builder below; its identity for AddConstraint/RemoveConstraint/
// HasConstraint purposes is the pointer, not its fields.
type Constraint = tableau.Constraint[*Variable]

// NewConstraint builds a Constraint directly.
func NewConstraint(e Expression, op Op, strength float64) *Constraint {
	return &Constraint{Expr: e, Op: op, Strength: Clip(strength)}
}

// WeightedRelation pairs a relational operator with a strength, as the
// first step of the fluent builder chain:
//
//	c := cassowary.Equal(cassowary.Strong).ExpressionLHS(expr).ConstantRHS(0)
type WeightedRelation struct {
	Operator Op
	Strength float64
}

// Equal starts a fluent "==" constraint at the given strength.
func Equal(strength float64) WeightedRelation {
	return WeightedRelation{Operator: EQ, Strength: strength}
}

// LessThanEqual starts a fluent "<=" constraint at the given strength.
func LessThanEqual(strength float64) WeightedRelation {
	return WeightedRelation{Operator: LTE, Strength: strength}
}

// GreaterThanEqual starts a fluent ">=" constraint at the given strength.
func GreaterThanEqual(strength float64) WeightedRelation {
	return WeightedRelation{Operator: GTE, Strength: strength}
}

// ExpressionLHS fixes an Expression as the left-hand side of the relation.
func (w WeightedRelation) ExpressionLHS(e Expression) PartialConstraint {
	return PartialConstraint{Expression: e, Relation: w}
}

// VariableLHS fixes a bare Variable as the left-hand side of the relation.
func (w WeightedRelation) VariableLHS(v *Variable) PartialConstraint {
	return PartialConstraint{Expression: NewExpression(0, v.T(1)), Relation: w}
}

// PartialConstraint is a WeightedRelation with its left-hand side fixed,
// awaiting a right-hand side to become a Constraint.
type PartialConstraint struct {
	Expression Expression
	Relation   WeightedRelation
}

// ConstantRHS completes the constraint against a constant right-hand side.
func (p PartialConstraint) ConstantRHS(c float64) *Constraint {
	return NewConstraint(SubConstant(p.Expression, c), p.Relation.Operator, p.Relation.Strength)
}

// ExpressionRHS completes the constraint against an Expression right-hand
// side.
func (p PartialConstraint) ExpressionRHS(e Expression) *Constraint {
	return NewConstraint(Sub(p.Expression, e), p.Relation.Operator, p.Relation.Strength)
}

// VariableRHS completes the constraint against a bare Variable right-hand
// side.
func (p PartialConstraint) VariableRHS(v *Variable) *Constraint {
	return NewConstraint(SubTerm(p.Expression, v.T(1)), p.Relation.Operator, p.Relation.Strength)
}
