package tableau

// epsilon is the sole numerical tolerance used throughout the tableau: it
// governs coefficient drop on insertion, the artificial-objective zero
// check, and the all-dummy redundant-constraint test. It must not vary per
// site.
const epsilon = 1.0e-8

func nearZero(v float64) bool {
	if v < 0 {
		return -v < epsilon
	}
	return v < epsilon
}

type cell struct {
	symbol Symbol
	coeff  float64
}

// Row is a constant plus a mapping from Symbol to coefficient. Cells are
// kept in insertion order so that "first in iteration order" (subject
// selection, entering/leaving symbol choice) is well defined without a
// secondary sort.
type Row struct {
	constant float64
	cells    []cell
}

// NewRow returns a Row holding just the given constant.
func NewRow(constant float64) Row {
	return Row{constant: constant}
}

// clone returns a deep-enough copy of r: the cell slice is copied so that
// mutating the clone never aliases r.
func (r Row) clone() Row {
	cells := make([]cell, len(r.cells))
	copy(cells, r.cells)
	return Row{constant: r.constant, cells: cells}
}

// Clone is the exported form of clone, used where the basis needs an
// explicit, independently-owned copy (row construction, the artificial
// phase).
func (r Row) Clone() Row { return r.clone() }

func (r *Row) find(sym Symbol) int {
	for i := range r.cells {
		if r.cells[i].symbol == sym {
			return i
		}
	}
	return -1
}

func (r *Row) removeAt(idx int) {
	copy(r.cells[idx:], r.cells[idx+1:])
	r.cells = r.cells[:len(r.cells)-1]
}

// coefficientFor returns the coefficient of sym in r, or (0, false) if sym
// is not present.
func (r *Row) coefficientFor(sym Symbol) (float64, bool) {
	idx := r.find(sym)
	if idx == -1 {
		return 0, false
	}
	return r.cells[idx].coeff, true
}

// insertSymbol adds c to the current coefficient of sym; if the result is
// within epsilon of zero, sym is removed.
func (r *Row) insertSymbol(sym Symbol, c float64) {
	idx := r.find(sym)
	if idx == -1 {
		if !nearZero(c) {
			r.cells = append(r.cells, cell{symbol: sym, coeff: c})
		}
		return
	}
	r.cells[idx].coeff += c
	if nearZero(r.cells[idx].coeff) {
		r.removeAt(idx)
	}
}

// insertRow adds other, scaled by c, into r: r.constant += other.constant*c,
// and every cell of other is inserted scaled by c.
func (r *Row) insertRow(other *Row, c float64) {
	r.constant += other.constant * c
	for i := range other.cells {
		r.insertSymbol(other.cells[i].symbol, other.cells[i].coeff*c)
	}
}

// reverseSign negates the constant and every coefficient.
func (r *Row) reverseSign() {
	r.constant = -r.constant
	for i := range r.cells {
		r.cells[i].coeff = -r.cells[i].coeff
	}
}

// solveFor isolates sym on the LHS: preconditions are that sym is present
// and its coefficient is non-zero. After this call r represents
// "sym = constant + sum(coeff*symbol)" in terms of its remaining cells.
func (r *Row) solveFor(sym Symbol) {
	idx := r.find(sym)
	if idx == -1 {
		return
	}

	k := -1.0 / r.cells[idx].coeff
	r.removeAt(idx)

	if k == 1.0 {
		return
	}

	r.constant *= k
	for i := range r.cells {
		r.cells[i].coeff *= k
	}
}

// solveForSymbols is solve-for-ex: it inserts a -1 coefficient for a new
// LHS symbol, then solves for an existing RHS symbol.
func (r *Row) solveForSymbols(lhs, rhs Symbol) {
	r.insertSymbol(lhs, -1.0)
	r.solveFor(rhs)
}

// substitute replaces every occurrence of sym by other, scaled by sym's
// coefficient in r.
func (r *Row) substitute(sym Symbol, other *Row) {
	idx := r.find(sym)
	if idx == -1 {
		return
	}
	c := r.cells[idx].coeff
	r.removeAt(idx)
	r.insertRow(other, c)
}

// removeSymbol deletes sym from r if present; it is a no-op otherwise.
func (r *Row) removeSymbol(sym Symbol) {
	if idx := r.find(sym); idx != -1 {
		r.removeAt(idx)
	}
}

// isConstant reports whether r has no cells.
func (r *Row) isConstant() bool { return len(r.cells) == 0 }

// isAllDummy reports whether every cell's symbol is of kind Dummy.
func (r *Row) isAllDummy() bool {
	for i := range r.cells {
		if r.cells[i].symbol.Kind != Dummy {
			return false
		}
	}
	return true
}
