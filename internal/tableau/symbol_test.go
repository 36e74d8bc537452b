package tableau

import "testing"

func TestSymbolKindRestricted(t *testing.T) {
	cases := map[SymbolKind]bool{
		External: false,
		Slack:    true,
		Error:    true,
		Dummy:    false,
		Invalid:  false,
	}

	for kind, want := range cases {
		if got := kind.Restricted(); got != want {
			t.Errorf("%s.Restricted() = %v, want %v", kind, got, want)
		}
	}
}

func TestInvalidSymbol(t *testing.T) {
	if InvalidSymbol.IsValid() {
		t.Fatal("InvalidSymbol.IsValid() = true, want false")
	}

	sym := Symbol{ID: 0, Kind: External}
	if !sym.IsValid() {
		t.Fatal("a zero-ID External symbol must be valid; only ID -1 is the sentinel")
	}
}

func TestSymbolKindString(t *testing.T) {
	if got := Slack.String(); got != "Slack" {
		t.Errorf("Slack.String() = %q, want %q", got, "Slack")
	}
}
