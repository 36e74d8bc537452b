package cli

import "testing"

func TestCenterLabel(t *testing.T) {
	got := centerLabel("ab", 6)
	if len(got) != 6 {
		t.Fatalf("centerLabel result length = %d, want 6", len(got))
	}
}

func TestCenterLabelTooNarrow(t *testing.T) {
	if got := centerLabel("too long", 3); got != "too long" {
		t.Fatalf("centerLabel with insufficient width = %q, want label unchanged", got)
	}
}
