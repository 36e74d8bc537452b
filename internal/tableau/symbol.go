package tableau

// SymbolKind tags the role a Symbol plays in the tableau.
type SymbolKind uint8

const (
	// External stands in for a user Variable that has appeared in at least
	// one constraint.
	External SymbolKind = iota
	// Slack is a non-negative auxiliary introduced for an inequality. It
	// contributes no weight to the objective.
	Slack
	// Error is a non-negative auxiliary whose magnitude measures a
	// constraint's violation. It contributes its constraint's strength to
	// the objective.
	Error
	// Dummy is a zero-valued placeholder used to pick a subject for required
	// equality constraints.
	Dummy
	// Invalid marks the sentinel "no such symbol" value.
	Invalid
)

var symbolKindNames = [...]string{
	External: "External",
	Slack:    "Slack",
	Error:    "Error",
	Dummy:    "Dummy",
	Invalid:  "Invalid",
}

func (k SymbolKind) String() string { return symbolKindNames[k] }

// Restricted reports whether a symbol of this kind is constrained to be
// non-negative, i.e. Slack or Error.
func (k SymbolKind) Restricted() bool { return k == Slack || k == Error }

// Symbol is an opaque identity used as a basis column label. Identity and
// equality are by ID; Kind travels with the value since an ID is only ever
// minted with one Kind for its lifetime.
type Symbol struct {
	ID   int64
	Kind SymbolKind
}

// InvalidSymbol is the sentinel "no such symbol" marker, with ID -1.
var InvalidSymbol = Symbol{ID: -1, Kind: Invalid}

// IsValid reports whether sym is anything other than InvalidSymbol.
func (sym Symbol) IsValid() bool { return sym.ID != InvalidSymbol.ID }

// Restricted reports whether sym is a Slack or Error symbol.
func (sym Symbol) Restricted() bool { return sym.Kind.Restricted() }
