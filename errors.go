package cassowary

import "github.com/go-tableau/cassowary/internal/tableau"

// The errors a Solver's mutating methods can return. These are re-exports
// of the tableau engine's own sentinels, so callers never need to import
// internal/tableau to check with errors.Is.
var (
	ErrDuplicateConstraint     = tableau.ErrDuplicateConstraint
	ErrUnknownConstraint       = tableau.ErrUnknownConstraint
	ErrUnsatisfiableConstraint = tableau.ErrUnsatisfiableConstraint
	ErrDuplicateEditVariable   = tableau.ErrDuplicateEditVariable
	ErrUnknownEditVariable     = tableau.ErrUnknownEditVariable
	ErrBadRequiredStrength     = tableau.ErrBadRequiredStrength
	ErrInternalSolverError     = tableau.ErrInternalSolverError
)
