package cassowary

import (
	"github.com/sirupsen/logrus"

	"github.com/go-tableau/cassowary/internal/tableau"
)

// Solver is the public constraint solver over *Variable. It wraps the
// generic tableau engine with debug logging; it is not safe for concurrent
// use.
type Solver struct {
	core *tableau.Solver[*Variable]
	log  *logrus.Logger
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a logger the Solver uses to report each mutation at
// debug level. The default is a logrus logger with output discarded.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Solver) { s.log = log }
}

// NewSolver returns an empty Solver.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		core: tableau.NewSolver[*Variable](),
		log:  logrus.New(),
	}
	s.log.SetOutput(discard{})

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// AddConstraint adds c to the solver, re-optimizing so the result is
// optimal and feasible. It fails with ErrDuplicateConstraint if c is
// already present, or ErrUnsatisfiableConstraint if c is Required and
// cannot be satisfied alongside the existing Required constraints.
func (s *Solver) AddConstraint(c *Constraint) error {
	err := s.core.AddConstraint(c)
	s.log.WithError(err).Debug("AddConstraint")
	return err
}

// RemoveConstraint removes c, which must have been added with
// AddConstraint. It fails with ErrUnknownConstraint otherwise.
func (s *Solver) RemoveConstraint(c *Constraint) error {
	err := s.core.RemoveConstraint(c)
	s.log.WithError(err).Debug("RemoveConstraint")
	return err
}

// HasConstraint reports whether c is currently registered with the solver.
func (s *Solver) HasConstraint(c *Constraint) bool {
	return s.core.HasConstraint(c)
}

// AddEditVariable registers v as interactively editable at the given
// strength, which must not be Required. Call SuggestValue to drive it
// afterward.
func (s *Solver) AddEditVariable(v *Variable, strength float64) error {
	err := s.core.AddEditVariable(v, Clip(strength))
	s.log.WithError(err).WithField("variable", v).Debug("AddEditVariable")
	return err
}

// RemoveEditVariable un-registers v.
func (s *Solver) RemoveEditVariable(v *Variable) error {
	err := s.core.RemoveEditVariable(v)
	s.log.WithError(err).WithField("variable", v).Debug("RemoveEditVariable")
	return err
}

// HasEditVariable reports whether v is currently registered as editable.
func (s *Solver) HasEditVariable(v *Variable) bool {
	return s.core.HasEditVariable(v)
}

// SuggestValue proposes value for the edit variable v, restoring
// feasibility without re-deriving the whole solution.
func (s *Solver) SuggestValue(v *Variable, value float64) error {
	err := s.core.SuggestValue(v, value)
	s.log.WithError(err).WithFields(logrus.Fields{"variable": v, "value": value}).Debug("SuggestValue")
	return err
}

// UpdateVariables pushes the solved value of every Variable that has
// appeared in a constraint back into it, readable afterward via Value.
func (s *Solver) UpdateVariables() {
	s.core.UpdateVariables()
}
