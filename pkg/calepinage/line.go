package calepinage

import (
	"strconv"
	"strings"
)

// Junction is the cumulative length offset of an internal seam between two
// adjacent planks in a line, measured from the row's start. Junctions of
// different lines share the same coordinate space, which makes seam
// collisions between consecutive rows directly comparable.
type Junction int

// Line is an ordered placement of planks spanning one row of the deck.
// Order is significant: it determines junction positions and is preserved
// in the textual form.
type Line struct {
	planks []Plank
}

// WithPlank returns a new line with p appended at the end.
func (l Line) WithPlank(p Plank) Line {
	planks := make([]Plank, len(l.planks), len(l.planks)+1)
	copy(planks, l.planks)
	return Line{planks: append(planks, p)}
}

// Planks returns the line's planks in placement order.
func (l Line) Planks() []Plank {
	out := make([]Plank, len(l.planks))
	copy(out, l.planks)
	return out
}

// TotalLength returns the sum of the line's plank lengths.
func (l Line) TotalLength() int {
	total := 0
	for _, p := range l.planks {
		total += p.length
	}
	return total
}

// Junctions returns the line's seam offsets in plank order: the cumulative
// prefix sum after each plank except the last. A line of n planks has
// exactly max(n-1, 0) junctions.
func (l Line) Junctions() []Junction {
	if len(l.planks) <= 1 {
		return nil
	}
	junctions := make([]Junction, 0, len(l.planks)-1)
	offset := 0
	for _, p := range l.planks[:len(l.planks)-1] {
		offset += p.length
		junctions = append(junctions, Junction(offset))
	}
	return junctions
}

// String renders the line as bracketed comma-joined plank lengths in
// placement order, e.g. "[10, 2]".
func (l Line) String() string {
	parts := make([]string, len(l.planks))
	for i, p := range l.planks {
		parts[i] = strconv.Itoa(p.length)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// lineFromHeap builds a line from the heap's planks in iteration order.
// Used to turn a completed selection into a row: the selection heap records
// planks in acceptance order, which is the placement order.
func lineFromHeap(h PlankHeap) Line {
	l := Line{}
	for _, p := range h.planks {
		l = l.WithPlank(p)
	}
	return l
}
