package tableau

import "errors"

// The seven named failure conditions of the solver contract. Nothing is
// silently ignored; every public mutation either succeeds, leaving
// invariants 1-6 intact, or returns one of these.
var (
	// ErrDuplicateConstraint is returned by AddConstraint when the
	// constraint is already present.
	ErrDuplicateConstraint = errors.New("tableau: constraint already added")

	// ErrUnknownConstraint is returned by RemoveConstraint for a constraint
	// the solver does not know about.
	ErrUnknownConstraint = errors.New("tableau: constraint is not registered")

	// ErrUnsatisfiableConstraint is returned by AddConstraint when no
	// subject can be found for a required constraint, or when the
	// artificial-variable phase cannot drive the artificial objective to
	// zero.
	ErrUnsatisfiableConstraint = errors.New("tableau: constraint is unsatisfiable")

	// ErrDuplicateEditVariable is returned by AddEditVariable for a variable
	// that is already registered as editable.
	ErrDuplicateEditVariable = errors.New("tableau: variable is already an edit variable")

	// ErrUnknownEditVariable is returned by RemoveEditVariable and
	// SuggestValue for a variable that is not registered as editable.
	ErrUnknownEditVariable = errors.New("tableau: variable is not an edit variable")

	// ErrBadRequiredStrength is returned by AddEditVariable when given the
	// required strength, which edit variables may never use.
	ErrBadRequiredStrength = errors.New("tableau: edit variable strength must not be required")

	// ErrInternalSolverError indicates a solver invariant was violated:
	// primal optimise found no bounding row (unbounded objective), dual
	// optimise found no entering symbol, or a marker-leaving row could not
	// be found on constraint removal. This should never happen for a
	// correctly implemented tableau.
	ErrInternalSolverError = errors.New("tableau: internal solver invariant violated")
)
