package cassowary

import "testing"

func TestExpressionArithmetic(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")

	e := NewExpression(10, x.T(2))
	e = AddTerm(e, y.T(-1))
	e = AddConstant(e, 5)

	if e.Constant != 15 {
		t.Fatalf("constant = %v, want 15", e.Constant)
	}
	if len(e.Terms) != 2 {
		t.Fatalf("terms = %d, want 2", len(e.Terms))
	}
}

func TestExpressionSubIsIndependentOfOperand(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")

	lhs := NewExpression(0, x.T(1))
	rhs := NewExpression(0, y.T(1))

	diff := Sub(lhs, rhs)

	if len(lhs.Terms) != 1 {
		t.Fatal("Sub must not mutate its left operand's term slice")
	}
	if len(rhs.Terms) != 1 || rhs.Terms[0].Coeff != 1 {
		t.Fatal("Sub must not mutate its right operand")
	}
	if len(diff.Terms) != 2 || diff.Terms[1].Coeff != -1 {
		t.Fatalf("diff terms = %+v, want [x:1 y:-1]", diff.Terms)
	}
}

func TestExpressionMulConstant(t *testing.T) {
	x := NewVariable("x")
	e := MulConstant(NewExpression(2, x.T(3)), 2)

	if e.Constant != 4 {
		t.Fatalf("constant = %v, want 4", e.Constant)
	}
	if e.Terms[0].Coeff != 6 {
		t.Fatalf("coeff = %v, want 6", e.Terms[0].Coeff)
	}
}

func TestPartialConstraintBuildsConstraint(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")

	c := Equal(Required).VariableLHS(x).VariableRHS(y)

	if c.Op != EQ {
		t.Fatalf("op = %v, want EQ", c.Op)
	}
	if c.Strength != Required {
		t.Fatalf("strength = %v, want Required", c.Strength)
	}
	if len(c.Expr.Terms) != 2 {
		t.Fatalf("terms = %d, want 2 (x and -y)", len(c.Expr.Terms))
	}
}
