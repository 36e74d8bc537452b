// Package layout partitions a one-dimensional span of space into adjacent
// regions using the cassowary constraint solver: callers describe each
// region with a Constraint (Len, Percent, Ratio, Min, Max, Fill), and
// Layout.Split resolves the best trade-off when the region's requirements
// cannot all be met at once, relaxing lower-priority constraints first.
//
// This package is a direct consumer of the root cassowary package: it is
// the solver applied to a genuinely UI-layout-shaped problem
// rather than exercised through synthetic test constraints.
package layout

import "fmt"

// Flex controls how leftover space is distributed once every region's
// constraint has been resolved, analogous to the CSS justify-content
// property.
type Flex int

const (
	// FlexStart packs regions against the leading edge; surplus space is
	// left at the trailing edge. It is the zero value, and so the default
	// for a Layout built with New.
	FlexStart Flex = iota

	// FlexLegacy assigns all surplus space to the lowest-priority trailing
	// region, filling the entire span.
	FlexLegacy

	// FlexEnd packs regions against the trailing edge.
	FlexEnd

	// FlexCenter centers the regions, splitting surplus space evenly before
	// the first and after the last.
	FlexCenter

	// FlexSpaceBetween distributes surplus space evenly between adjacent
	// regions, with none before the first or after the last.
	FlexSpaceBetween

	// FlexSpaceEvenly distributes surplus space so every gap, including the
	// leading and trailing ones, is equal.
	FlexSpaceEvenly

	// FlexSpaceAround gives each region equal space on both sides, so
	// adjacent regions end up with twice the gap of the outer edges.
	FlexSpaceAround
)

func (f Flex) String() string {
	switch f {
	case FlexStart:
		return "Start"
	case FlexLegacy:
		return "Legacy"
	case FlexEnd:
		return "End"
	case FlexCenter:
		return "Center"
	case FlexSpaceBetween:
		return "SpaceBetween"
	case FlexSpaceEvenly:
		return "SpaceEvenly"
	case FlexSpaceAround:
		return "SpaceAround"
	default:
		return fmt.Sprintf("Flex(%d)", int(f))
	}
}
