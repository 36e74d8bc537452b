package cassowary

import (
	"github.com/go-tableau/cassowary/internal/tableau"
)

// Required, Strong, Medium, and Weak are the four conventional strength
// tiers. Strong, Medium, and Weak are plain weights, each 1000x the next, so
// a single higher-tier constraint outweighs fewer than 1000 lower-tier ones
// of the next tier down. Required is the tableau's own sentinel (+Inf): a
// constraint at Required strength must hold exactly.
var (
	Required = tableau.Required
	Strong   = 1_000_000.0
	Medium   = 1_000.0
	Weak     = 1.0
)

// Clip bounds strength to a usable range: negative strengths are raised to
// 0, and anything above Required is pulled down to Required.
func Clip(strength float64) float64 {
	if strength < 0 {
		return 0
	}
	if strength > Required {
		return Required
	}
	return strength
}
