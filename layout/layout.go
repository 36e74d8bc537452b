package layout

import (
	"fmt"
	"math"

	"github.com/go-tableau/cassowary"
)

// Precision-scaling lets a Min/Max/Len stated as an integer size coexist
// with Percent/Ratio/Fill regions, which the solver otherwise settles at
// fractional coordinates; rounding happens once, after solving.
const precision float64 = 100.0

var (
	spacerSizeEq   = 1e15
	minSizeGTE     = cassowary.Strong * 100
	maxSizeLTE     = cassowary.Strong * 100
	lengthSizeEq   = cassowary.Strong * 10
	percentSizeEq  = cassowary.Strong
	ratioSizeEq    = cassowary.Strong / 10
	minSizeEq      = cassowary.Medium * 10
	maxSizeEq      = cassowary.Medium * 10
	fillGrow       = cassowary.Medium
	grow           = 100.0
	spaceGrow      = cassowary.Weak * 10
	allSegmentGrow = cassowary.Weak
)

// Splitted holds the regions produced by a Layout.Split call.
type Splitted []Rect

// Assign stores each resulting Rect into the corresponding pointer, in
// order. Nil pointers are skipped; it panics if areas is longer than s.
func (s Splitted) Assign(areas ...*Rect) {
	for i := range areas {
		if areas[i] != nil {
			*areas[i] = s[i]
		}
	}
}

// Layout splits a span [start, end) into adjacent regions, one per
// Constraint. Padding insets the span before solving; Spacing adds a gap
// (or, if negative, an overlap) between adjacent regions; Flex controls
// how any leftover space is distributed.
type Layout struct {
	Constraints []Constraint
	Padding     Padding
	Spacing     int
	Flex        Flex
}

// New returns a Layout over the given constraints, one per region in
// order.
func New(constraints ...Constraint) Layout {
	return Layout{Constraints: constraints}
}

// WithPadding returns a copy of l using the given padding.
func (l Layout) WithPadding(p Padding) Layout {
	l.Padding = p
	return l
}

// WithFlex returns a copy of l using the given flex strategy.
func (l Layout) WithFlex(flex Flex) Layout {
	l.Flex = flex
	return l
}

// WithSpacing returns a copy of l using the given spacing.
func (l Layout) WithSpacing(spacing int) Layout {
	l.Spacing = spacing
	return l
}

// WithConstraints returns a copy of l with constraints appended.
func (l Layout) WithConstraints(constraints ...Constraint) Layout {
	l.Constraints = append(append([]Constraint{}, l.Constraints...), constraints...)
	return l
}

// Split partitions [start, end) into one Rect per constraint.
func (l Layout) Split(start, end int) (Splitted, error) {
	segments, _, err := l.SplitWithSpacers(start, end)
	return segments, err
}

// SplitWithSpacers partitions [start, end) into content regions and the
// gaps (spacers) around them: one before the first region, one between each
// adjacent pair, and one after the last.
func (l Layout) SplitWithSpacers(start, end int) (segments, spacers Splitted, err error) {
	s := cassowary.NewSolver()

	innerStart, innerEnd := l.Padding.Apply(start, end)
	areaStart := float64(innerStart) * precision
	areaEnd := float64(innerEnd) * precision

	variableCount := len(l.Constraints)*2 + 2
	variables := make([]*cassowary.Variable, variableCount)
	for i := range variables {
		variables[i] = cassowary.NewVariable(fmt.Sprintf("v%d", i))
	}

	spacerElements := pairUp(variables)
	segmentElements := pairUp(variables[1:])

	area := element{start: variables[0], end: variables[len(variables)-1]}

	if err := configureArea(s, area, areaStart, areaEnd); err != nil {
		return nil, nil, fmt.Errorf("layout: configure area: %w", err)
	}
	if err := configureVariablesWithinArea(s, variables, area); err != nil {
		return nil, nil, fmt.Errorf("layout: configure bounds: %w", err)
	}
	if err := configureVariableOrdering(s, variables); err != nil {
		return nil, nil, fmt.Errorf("layout: configure ordering: %w", err)
	}
	if err := configureFlexConstraints(s, area, spacerElements, l.Flex, l.Spacing); err != nil {
		return nil, nil, fmt.Errorf("layout: configure flex: %w", err)
	}
	if err := configureConstraints(s, area, segmentElements, l.Constraints, l.Flex); err != nil {
		return nil, nil, fmt.Errorf("layout: configure constraints: %w", err)
	}
	if err := configureFillConstraints(s, segmentElements, l.Constraints, l.Flex); err != nil {
		return nil, nil, fmt.Errorf("layout: configure fill: %w", err)
	}

	if l.Flex != FlexLegacy {
		for i := 0; i < len(segmentElements)-1; i++ {
			c := segmentElements[i].sizeEqSize(segmentElements[i+1])
			if err := s.AddConstraint(cassowary.NewConstraint(c, cassowary.EQ, allSegmentGrow)); err != nil {
				return nil, nil, fmt.Errorf("layout: equalize segments: %w", err)
			}
		}
	}

	s.UpdateVariables()

	return elementsToRects(segmentElements), elementsToRects(spacerElements), nil
}

func elementsToRects(elements []element) Splitted {
	rects := make(Splitted, 0, len(elements))
	for _, e := range elements {
		startRounded := int(math.Round(math.Round(e.start.Value()) / precision))
		endRounded := int(math.Round(math.Round(e.end.Value()) / precision))
		size := endRounded - startRounded
		if size < 0 {
			size = 0
		}
		rects = append(rects, Rect{Start: startRounded, Size: size})
	}
	return rects
}

// element is a pair of variables marking a region's start and end offset.
type element struct {
	start, end *cassowary.Variable
}

func (e element) empty() cassowary.Expression {
	return cassowary.NewExpression(0, e.end.T(1), e.start.T(-1))
}

func (e element) sizeEqConst(size int) cassowary.Expression {
	return cassowary.NewExpression(-float64(size)*precision, e.end.T(1), e.start.T(-1))
}

func (e element) sizeLTE(size int) cassowary.Expression { return e.sizeEqConst(size) }
func (e element) sizeGTE(size int) cassowary.Expression { return e.sizeEqConst(size) }

func (e element) sizeEqSize(other element) cassowary.Expression {
	return cassowary.NewExpression(0, e.end.T(1), e.start.T(-1), other.end.T(-1), other.start.T(1))
}

func (e element) sizeEqScaledSize(other element, f float64) cassowary.Expression {
	return cassowary.NewExpression(0, e.end.T(1), e.start.T(-1), other.end.T(-f), other.start.T(f))
}

func (e element) sizeEqDouble(other element) cassowary.Expression {
	return cassowary.NewExpression(0, e.end.T(1), e.start.T(-1), other.end.T(-2), other.start.T(2))
}

func pairUp(variables []*cassowary.Variable) []element {
	count := len(variables)
	elements := make([]element, 0, count/2)
	for i := 0; i+1 < count; i += 2 {
		elements = append(elements, element{start: variables[i], end: variables[i+1]})
	}
	return elements
}

// pairs enumerates every (i, j) with i < j < n, the only combination shape
// this package needs.
func pairs(n int) [][2]int {
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

func configureArea(s *cassowary.Solver, area element, start, end float64) error {
	if err := s.AddConstraint(cassowary.NewConstraint(cassowary.NewExpression(-start, area.start.T(1)), cassowary.EQ, cassowary.Required)); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := s.AddConstraint(cassowary.NewConstraint(cassowary.NewExpression(-end, area.end.T(1)), cassowary.EQ, cassowary.Required)); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	return nil
}

func configureVariablesWithinArea(s *cassowary.Solver, variables []*cassowary.Variable, area element) error {
	for _, v := range variables {
		if err := s.AddConstraint(cassowary.NewConstraint(cassowary.NewExpression(0, v.T(1), area.start.T(-1)), cassowary.GTE, cassowary.Required)); err != nil {
			return fmt.Errorf("lower bound: %w", err)
		}
		if err := s.AddConstraint(cassowary.NewConstraint(cassowary.NewExpression(0, v.T(1), area.end.T(-1)), cassowary.LTE, cassowary.Required)); err != nil {
			return fmt.Errorf("upper bound: %w", err)
		}
	}
	return nil
}

func configureVariableOrdering(s *cassowary.Solver, variables []*cassowary.Variable) error {
	rest := variables[1:]
	for i := 0; i+1 < len(rest); i += 2 {
		left, right := rest[i], rest[i+1]
		c := cassowary.NewExpression(0, left.T(1), right.T(-1))
		if err := s.AddConstraint(cassowary.NewConstraint(c, cassowary.LTE, cassowary.Required)); err != nil {
			return err
		}
	}
	return nil
}

func configureFlexConstraints(s *cassowary.Solver, area element, spacers []element, flex Flex, spacing int) error {
	var middle []element
	if len(spacers) > 2 {
		middle = spacers[1 : len(spacers)-1]
	}

	fixedGap := func(els []element) error {
		for _, sp := range els {
			if err := s.AddConstraint(cassowary.NewConstraint(sp.sizeEqConst(spacing), cassowary.EQ, spacerSizeEq)); err != nil {
				return err
			}
		}
		return nil
	}

	pinEmpty := func(e element) error {
		return s.AddConstraint(cassowary.NewConstraint(e.empty(), cassowary.EQ, spacerSizeEq))
	}

	growToArea := func(e element, priority float64) error {
		return s.AddConstraint(cassowary.NewConstraint(e.sizeEqSize(area), cassowary.EQ, priority))
	}

	switch flex {
	case FlexLegacy:
		if err := fixedGap(middle); err != nil {
			return err
		}
		if len(spacers) >= 2 {
			if err := pinEmpty(spacers[0]); err != nil {
				return err
			}
			if err := pinEmpty(spacers[len(spacers)-1]); err != nil {
				return err
			}
		}

	case FlexSpaceEvenly, FlexSpaceAround:
		for _, p := range pairs(len(spacers)) {
			left, right := spacers[p[0]], spacers[p[1]]
			c := left.sizeEqSize(right)
			if flex == FlexSpaceAround && len(middle) > 0 {
				leftOuter, rightOuter := p[0] == 0, p[1] == len(spacers)-1
				switch {
				case leftOuter && !rightOuter:
					c = right.sizeEqDouble(left)
				case rightOuter && !leftOuter:
					c = left.sizeEqDouble(right)
				}
			}
			if err := s.AddConstraint(cassowary.NewConstraint(c, cassowary.EQ, spacerSizeEq)); err != nil {
				return err
			}
		}
		for _, sp := range spacers {
			if err := s.AddConstraint(cassowary.NewConstraint(sp.sizeGTE(spacing), cassowary.GTE, spacerSizeEq)); err != nil {
				return err
			}
			if err := growToArea(sp, spaceGrow); err != nil {
				return err
			}
		}

	case FlexSpaceBetween:
		for _, p := range pairs(len(middle)) {
			if err := s.AddConstraint(cassowary.NewConstraint(middle[p[0]].sizeEqSize(middle[p[1]]), cassowary.EQ, spacerSizeEq)); err != nil {
				return err
			}
		}
		for _, sp := range middle {
			if err := s.AddConstraint(cassowary.NewConstraint(sp.sizeGTE(spacing), cassowary.GTE, spacerSizeEq)); err != nil {
				return err
			}
			if err := growToArea(sp, spaceGrow); err != nil {
				return err
			}
		}
		if len(spacers) >= 2 {
			if err := pinEmpty(spacers[0]); err != nil {
				return err
			}
			if err := pinEmpty(spacers[len(spacers)-1]); err != nil {
				return err
			}
		}

	case FlexStart:
		if err := fixedGap(middle); err != nil {
			return err
		}
		if len(spacers) >= 2 {
			if err := pinEmpty(spacers[0]); err != nil {
				return err
			}
			if err := growToArea(spacers[len(spacers)-1], grow); err != nil {
				return err
			}
		}

	case FlexEnd:
		if err := fixedGap(middle); err != nil {
			return err
		}
		if len(spacers) >= 2 {
			if err := pinEmpty(spacers[len(spacers)-1]); err != nil {
				return err
			}
			if err := growToArea(spacers[0], grow); err != nil {
				return err
			}
		}

	case FlexCenter:
		if err := fixedGap(middle); err != nil {
			return err
		}
		if len(spacers) >= 2 {
			first, last := spacers[0], spacers[len(spacers)-1]
			if err := growToArea(first, grow); err != nil {
				return err
			}
			if err := growToArea(last, grow); err != nil {
				return err
			}
			if err := s.AddConstraint(cassowary.NewConstraint(first.sizeEqSize(last), cassowary.EQ, spacerSizeEq)); err != nil {
				return err
			}
		}
	}

	return nil
}

func configureConstraints(s *cassowary.Solver, area element, segments []element, constraints []Constraint, flex Flex) error {
	n := min(len(constraints), len(segments))

	for i := 0; i < n; i++ {
		seg := segments[i]

		switch c := constraints[i].(type) {
		case Max:
			size := int(c)
			if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeLTE(size), cassowary.LTE, maxSizeLTE)); err != nil {
				return err
			}
			if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeEqConst(size), cassowary.EQ, maxSizeEq)); err != nil {
				return err
			}

		case Min:
			size := int(c)
			if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeGTE(size), cassowary.GTE, minSizeGTE)); err != nil {
				return err
			}
			if flex == FlexLegacy {
				if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeEqConst(size), cassowary.EQ, minSizeEq)); err != nil {
					return err
				}
			} else if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeEqSize(area), cassowary.EQ, fillGrow)); err != nil {
				return err
			}

		case Len:
			if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeEqConst(int(c)), cassowary.EQ, lengthSizeEq)); err != nil {
				return err
			}

		case Percent:
			f := float64(c) / 100
			if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeEqScaledSize(area, f), cassowary.EQ, percentSizeEq)); err != nil {
				return err
			}

		case Ratio:
			den := c.Den
			if den < 1 {
				den = 1
			}
			f := float64(c.Num) / float64(den)
			if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeEqScaledSize(area, f), cassowary.EQ, ratioSizeEq)); err != nil {
				return err
			}

		case Fill:
			if err := s.AddConstraint(cassowary.NewConstraint(seg.sizeEqSize(area), cassowary.EQ, fillGrow)); err != nil {
				return err
			}
		}
	}

	return nil
}

// configureFillConstraints pairs up every Fill (and, outside legacy flex,
// every Min) region so leftover space splits in proportion to each
// region's weight, rather than all Fill regions merely tying for equal
// size.
func configureFillConstraints(s *cassowary.Solver, segments []element, constraints []Constraint, flex Flex) error {
	var weighted []element
	var weights []float64

	n := min(len(constraints), len(segments))
	for i := 0; i < n; i++ {
		switch c := constraints[i].(type) {
		case Fill:
			w := float64(c)
			if w < 1e-6 {
				w = 1e-6
			}
			weighted = append(weighted, segments[i])
			weights = append(weights, w)
		case Min:
			if flex == FlexLegacy {
				continue
			}
			weighted = append(weighted, segments[i])
			weights = append(weights, 1)
		}
	}

	for _, p := range pairs(len(weighted)) {
		i, j := p[0], p[1]
		left, right := weighted[i], weighted[j]
		lw, rw := weights[i], weights[j]

		c := cassowary.NewExpression(0, left.end.T(rw), left.start.T(-rw), right.end.T(-lw), right.start.T(lw))
		if err := s.AddConstraint(cassowary.NewConstraint(c, cassowary.EQ, grow)); err != nil {
			return err
		}
	}

	return nil
}
