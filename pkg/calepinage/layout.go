package calepinage

import "strings"

// Calepinage is the complete layout: the ordered sequence of lines covering
// the deck's width, first row first.
type Calepinage struct {
	lines []Line
}

// WithLine returns a new layout with l appended as the next row.
func (c Calepinage) WithLine(l Line) Calepinage {
	lines := make([]Line, len(c.lines), len(c.lines)+1)
	copy(lines, c.lines)
	return Calepinage{lines: append(lines, l)}
}

// Lines returns the layout's rows in order.
func (c Calepinage) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// String renders the layout in its canonical textual form,
// e.g. "Calepinage([10, 2], [2, 10], [10, 2])".
func (c Calepinage) String() string {
	parts := make([]string, len(c.lines))
	for i, l := range c.lines {
		parts[i] = l.String()
	}
	return "Calepinage(" + strings.Join(parts, ", ") + ")"
}
