package tableau

import "testing"

func TestRowInsertSymbolDropsNearZero(t *testing.T) {
	row := NewRow(0)
	sym := Symbol{ID: 1, Kind: Slack}

	row.insertSymbol(sym, 3.0)
	row.insertSymbol(sym, -3.0+1e-10)

	if _, ok := row.coefficientFor(sym); ok {
		t.Fatal("coefficient within epsilon of zero must be dropped")
	}
}

func TestRowInsertRowScalesAndAccumulates(t *testing.T) {
	a := Symbol{ID: 1, Kind: External}
	b := Symbol{ID: 2, Kind: External}

	other := NewRow(10)
	other.insertSymbol(a, 2.0)
	other.insertSymbol(b, -1.0)

	row := NewRow(5)
	row.insertSymbol(a, 1.0)
	row.insertRow(&other, 2.0)

	if row.constant != 25 {
		t.Fatalf("constant = %v, want 25", row.constant)
	}

	if c, ok := row.coefficientFor(a); !ok || c != 5.0 {
		t.Fatalf("coefficient for a = %v, %v, want 5, true", c, ok)
	}

	if c, ok := row.coefficientFor(b); !ok || c != -2.0 {
		t.Fatalf("coefficient for b = %v, %v, want -2, true", c, ok)
	}
}

func TestRowReverseSign(t *testing.T) {
	a := Symbol{ID: 1, Kind: External}

	row := NewRow(4)
	row.insertSymbol(a, 2.0)
	row.reverseSign()

	if row.constant != -4 {
		t.Fatalf("constant = %v, want -4", row.constant)
	}
	if c, _ := row.coefficientFor(a); c != -2.0 {
		t.Fatalf("coefficient = %v, want -2", c)
	}
}

func TestRowSolveFor(t *testing.T) {
	a := Symbol{ID: 1, Kind: External}
	b := Symbol{ID: 2, Kind: External}

	// 2a + b + 6 = 0  =>  a = -3 - b/2
	row := NewRow(6)
	row.insertSymbol(a, 2.0)
	row.insertSymbol(b, 1.0)

	row.solveFor(a)

	if row.constant != -3 {
		t.Fatalf("constant = %v, want -3", row.constant)
	}
	if c, ok := row.coefficientFor(b); !ok || c != -0.5 {
		t.Fatalf("coefficient for b = %v, %v, want -0.5, true", c, ok)
	}
	if _, ok := row.coefficientFor(a); ok {
		t.Fatal("a must no longer appear in its own solved row")
	}
}

func TestRowSubstitute(t *testing.T) {
	b := Symbol{ID: 2, Kind: External}
	c := Symbol{ID: 3, Kind: External}

	// b = 1 + 2c
	repl := NewRow(1)
	repl.insertSymbol(c, 2.0)

	// row: a = 3 + 5b  ->  a = 3 + 5(1+2c) = 8 + 10c
	row := NewRow(3)
	row.insertSymbol(b, 5.0)

	row.substitute(b, &repl)

	if row.constant != 8 {
		t.Fatalf("constant = %v, want 8", row.constant)
	}
	if coeff, ok := row.coefficientFor(c); !ok || coeff != 10.0 {
		t.Fatalf("coefficient for c = %v, %v, want 10, true", coeff, ok)
	}
	if _, ok := row.coefficientFor(b); ok {
		t.Fatal("substituted symbol must not remain")
	}
}

func TestRowIsAllDummy(t *testing.T) {
	row := NewRow(0)
	if !row.isAllDummy() {
		t.Fatal("an empty row is vacuously all-dummy")
	}

	row.insertSymbol(Symbol{ID: 1, Kind: Dummy}, 1.0)
	if !row.isAllDummy() {
		t.Fatal("row of only dummy cells must be all-dummy")
	}

	row.insertSymbol(Symbol{ID: 2, Kind: Slack}, 1.0)
	if row.isAllDummy() {
		t.Fatal("row with a non-dummy cell must not be all-dummy")
	}
}

func TestRowCloneIsIndependent(t *testing.T) {
	a := Symbol{ID: 1, Kind: External}

	row := NewRow(1)
	row.insertSymbol(a, 1.0)

	clone := row.clone()
	clone.insertSymbol(a, 1.0)

	if c, _ := row.coefficientFor(a); c != 1.0 {
		t.Fatalf("mutating a clone must not affect the original, got coeff %v", c)
	}
	if c, _ := clone.coefficientFor(a); c != 2.0 {
		t.Fatalf("clone coefficient = %v, want 2", c)
	}
}
