package calepinage

import "testing"

func TestCalepinage_String(t *testing.T) {
	layout := Calepinage{}.
		WithLine(lineOf(t, 10, 2)).
		WithLine(lineOf(t, 2, 10)).
		WithLine(lineOf(t, 10, 2))

	want := "Calepinage([10, 2], [2, 10], [10, 2])"
	if got := layout.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCalepinage_StringEmpty(t *testing.T) {
	if got := (Calepinage{}).String(); got != "Calepinage()" {
		t.Errorf("String() = %q, want %q", got, "Calepinage()")
	}
}

func TestCalepinage_WithLineValueSemantics(t *testing.T) {
	base := Calepinage{}.WithLine(lineOf(t, 5))
	grown := base.WithLine(lineOf(t, 7))

	if got := len(base.Lines()); got != 1 {
		t.Errorf("base layout has %d lines, want 1", got)
	}
	if got := len(grown.Lines()); got != 2 {
		t.Errorf("grown layout has %d lines, want 2", got)
	}
}

func TestCalepinage_LinesPreserveOrder(t *testing.T) {
	layout := Calepinage{}.
		WithLine(lineOf(t, 1)).
		WithLine(lineOf(t, 2))

	lines := layout.Lines()
	if lines[0].String() != "[1]" || lines[1].String() != "[2]" {
		t.Errorf("Lines() = %v, want rows in insertion order", lines)
	}
}
