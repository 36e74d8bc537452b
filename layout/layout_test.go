package layout

import "testing"

func TestSplitEqualFill(t *testing.T) {
	l := New(Fill(1), Fill(1))

	segments, err := l.Split(0, 100)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}

	for _, seg := range segments {
		if seg.Size < 48 || seg.Size > 52 {
			t.Errorf("segment size = %d, want ~50", seg.Size)
		}
	}
}

func TestSplitWeightedFill(t *testing.T) {
	l := New(Fill(1), Fill(2), Fill(3))

	segments, err := l.Split(0, 60)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(segments))
	}

	if segments[0].Size >= segments[1].Size || segments[1].Size >= segments[2].Size {
		t.Errorf("segments must grow in proportion to their weight, got %+v", segments)
	}
}

func TestSplitFixedLengths(t *testing.T) {
	l := New(Len(20), Len(30))

	segments, err := l.Split(0, 50)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if segments[0].Size != 20 {
		t.Errorf("segment 0 size = %d, want 20", segments[0].Size)
	}
	if segments[1].Size != 30 {
		t.Errorf("segment 1 size = %d, want 30", segments[1].Size)
	}
}

func TestSplitPercent(t *testing.T) {
	l := New(Percent(50), Percent(50))

	segments, err := l.Split(0, 100)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if segments[0].Size != 50 || segments[1].Size != 50 {
		t.Fatalf("segments = %+v, want [50 50]", segments)
	}
}

func TestSplitMinFloorsSegment(t *testing.T) {
	l := New(Len(10), Min(30))

	segments, err := l.Split(0, 50)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if segments[1].Size < 30 {
		t.Errorf("Min(30) segment size = %d, want >= 30", segments[1].Size)
	}
}

func TestSplitMaxCapsSegment(t *testing.T) {
	l := New(Max(20), Fill(1))

	segments, err := l.Split(0, 100)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if segments[0].Size > 20 {
		t.Errorf("Max(20) segment size = %d, want <= 20", segments[0].Size)
	}
}

func TestSplitWithSpacersCount(t *testing.T) {
	l := New(Len(10), Len(10), Len(10)).WithSpacing(2)

	segments, spacers, err := l.SplitWithSpacers(0, 100)
	if err != nil {
		t.Fatalf("SplitWithSpacers: %v", err)
	}
	if len(segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(segments))
	}
	if len(spacers) != 4 {
		t.Fatalf("spacers = %d, want 4 (before, between x2, after)", len(spacers))
	}
}

func TestSplittedAssign(t *testing.T) {
	var a, b Rect
	s := Splitted{{Start: 0, Size: 10}, {Start: 10, Size: 20}}
	s.Assign(&a, &b)

	if a.Size != 10 || b.Size != 20 {
		t.Fatalf("assigned a=%+v b=%+v, want sizes 10 and 20", a, b)
	}
}

func TestPaddingApply(t *testing.T) {
	p := Padding{Before: 5, After: 5}
	start, end := p.Apply(0, 100)

	if start != 5 || end != 95 {
		t.Fatalf("Apply = (%d, %d), want (5, 95)", start, end)
	}
}

func TestFlexString(t *testing.T) {
	if got := FlexCenter.String(); got != "Center" {
		t.Errorf("FlexCenter.String() = %q, want %q", got, "Center")
	}
}
