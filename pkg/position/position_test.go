package position

import "testing"

func TestOrigin_IsValid(t *testing.T) {
	if !(Origin{Begin: 0, End: 3}).IsValid() {
		t.Error("expected a non-empty range to be valid")
	}
	if None.IsValid() {
		t.Error("expected the zero Origin to be invalid")
	}
}

func TestOrigin_Len(t *testing.T) {
	if got := (Origin{Begin: 2, End: 7}).Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if got := (Origin{Begin: 7, End: 2}).Len(); got != 0 {
		t.Errorf("Len() of an inverted range = %d, want 0", got)
	}
}

func TestOrigin_Before(t *testing.T) {
	a := Origin{Begin: 1, End: 2}
	b := Origin{Begin: 5, End: 6}
	if !a.Before(b) {
		t.Error("expected a to be before b")
	}
	if b.Before(a) {
		t.Error("expected b to not be before a")
	}
}

func TestSpan_ContainsBoth(t *testing.T) {
	a := Origin{Begin: 5, End: 10}
	b := Origin{Begin: 2, End: 7}
	got := Span(a, b)
	if got.Begin != 2 || got.End != 10 {
		t.Errorf("Span() = %+v, want {2 10}", got)
	}
}

func TestTable_AddAndLookup(t *testing.T) {
	tab := NewTable()
	tag1 := tab.Add(Origin{Begin: 0, End: 3})
	tag2 := tab.Add(Origin{Begin: 3, End: 6})
	if tab.Lookup(tag1) != (Origin{Begin: 0, End: 3}) {
		t.Error("lookup of tag1 mismatched")
	}
	if tab.Lookup(tag2) != (Origin{Begin: 3, End: 6}) {
		t.Error("lookup of tag2 mismatched")
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
}

func TestLineCol_TracksNewlines(t *testing.T) {
	src := "abc\ndef\nghi"
	line, col := LineCol(src, 5) // 'e' in "def"
	if line != 2 || col != 2 {
		t.Errorf("LineCol() = (%d,%d), want (2,2)", line, col)
	}
}

func TestLineText_ReturnsContainingLineWithoutNewline(t *testing.T) {
	src := "abc\ndefgh\nij"
	got := LineText(src, 6) // somewhere within "defgh"
	if got != "defgh" {
		t.Errorf("LineText() = %q, want %q", got, "defgh")
	}
}
