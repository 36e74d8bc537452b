package layout

// Constraint describes how a single region of a Layout should be sized.
// Fixed (Len), proportional (Percent, Ratio), bounded (Min, Max), and
// greedy (Fill) rules compose; when they conflict the solver favors them
// in this order, highest first: Min, Max, Len, Percent, Ratio, Fill.
type Constraint interface {
	isConstraint()
}

type (
	// Min ensures a region is no smaller than the given size.
	Min int

	// Max caps a region at the given size.
	Max int

	// Len fixes a region to exactly the given size.
	Len int

	// Percent sizes a region as a percentage (0-100+) of the total span.
	Percent int

	// Ratio sizes a region as Num/Den of the total span.
	Ratio struct{ Num, Den int }

	// Fill distributes leftover space among all Fill regions in proportion
	// to their weight, after every higher-priority constraint is resolved.
	Fill int
)

func (Min) isConstraint()     {}
func (Max) isConstraint()     {}
func (Len) isConstraint()     {}
func (Percent) isConstraint() {}
func (Ratio) isConstraint()   {}
func (Fill) isConstraint()    {}
