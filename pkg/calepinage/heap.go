package calepinage

import (
	"slices"
	"strconv"
	"strings"

	"github.com/tbonnin/calepin/pkg/errors"
)

// PlankHeap is an unordered multiset of planks with a cached total length.
// The cache is maintained by every add operation, so TotalLength is always
// the exact sum over the heap's planks.
//
// PlankHeap is a value type: Add and the unexported helpers return new heaps
// and never mutate the receiver's backing storage in a caller-visible way.
// The iteration order is the insertion order; it carries no meaning but is
// deterministic, which the textual form relies on for diagnostics.
type PlankHeap struct {
	planks []Plank
	total  int
}

// NewPlankHeap returns an empty heap.
func NewPlankHeap() PlankHeap { return PlankHeap{} }

// Add returns a new heap with count additional planks of the given length.
// Returns INVALID_PLANK if count is negative or the length is out of bounds;
// the receiver is unchanged on error.
func (h PlankHeap) Add(count, length int) (PlankHeap, error) {
	if count < 0 {
		return PlankHeap{}, errors.New(errors.ErrCodeInvalidPlank, "plank count must be non-negative, got %d", count)
	}
	p, err := NewPlank(length)
	if err != nil {
		return PlankHeap{}, err
	}
	out := h.clone()
	for i := 0; i < count; i++ {
		out = out.push(p)
	}
	return out, nil
}

// FromLengths builds a heap by adding one plank per length, left to right.
// The heap's total count and total length match the input exactly.
func FromLengths(lengths ...int) (PlankHeap, error) {
	h := NewPlankHeap()
	for _, l := range lengths {
		var err error
		if h, err = h.Add(1, l); err != nil {
			return PlankHeap{}, err
		}
	}
	return h, nil
}

// Planks returns the heap's planks in iteration order.
// The returned slice is a copy; modifying it does not affect the heap.
func (h PlankHeap) Planks() []Plank { return slices.Clone(h.planks) }

// Count returns the number of planks in the heap.
func (h PlankHeap) Count() int { return len(h.planks) }

// TotalLength returns the cached sum of all plank lengths.
func (h PlankHeap) TotalLength() int { return h.total }

// String renders the heap as comma-joined plank lengths in iteration order,
// e.g. "8, 8, 5". An empty heap renders as an empty string.
func (h PlankHeap) String() string {
	parts := make([]string, len(h.planks))
	for i, p := range h.planks {
		parts[i] = strconv.Itoa(p.length)
	}
	return strings.Join(parts, ", ")
}

// push returns a new heap with p appended. Internal: p is already validated.
func (h PlankHeap) push(p Plank) PlankHeap {
	planks := make([]Plank, len(h.planks), len(h.planks)+1)
	copy(planks, h.planks)
	return PlankHeap{planks: append(planks, p), total: h.total + p.length}
}

// clone returns a heap backed by fresh storage with identical contents.
func (h PlankHeap) clone() PlankHeap {
	return PlankHeap{planks: slices.Clone(h.planks), total: h.total}
}

// sortedDescending returns a new heap with planks ordered longest first.
// The sort is stable so equal lengths keep their insertion order.
func (h PlankHeap) sortedDescending() PlankHeap {
	out := h.clone()
	slices.SortStableFunc(out.planks, func(a, b Plank) int {
		return b.length - a.length
	})
	return out
}
