package calepinage

import "testing"

func TestStep_PlaceAccepts(t *testing.T) {
	s := step{}.place(mustPlank(t, 5), 10, junctionSet{}, false)
	if got := s.selected.TotalLength(); got != 5 {
		t.Errorf("selected total = %d, want 5", got)
	}
	if s.remaining.Count() != 0 || s.stash != nil {
		t.Errorf("plank leaked out of selected: %s", s)
	}
}

func TestStep_PlaceRejectsOversized(t *testing.T) {
	s := step{}.place(mustPlank(t, 8), 10, junctionSet{}, false)
	s = s.place(mustPlank(t, 5), 10, junctionSet{}, false)

	if got := s.remaining.String(); got != "5" {
		t.Errorf("remaining = %q, want %q", got, "5")
	}
	if got := s.selected.String(); got != "8" {
		t.Errorf("selected = %q, want %q", got, "8")
	}
}

func TestStep_PlaceStashesCollision(t *testing.T) {
	forbidden := junctionSetOf([]Junction{10})
	s := step{}.place(mustPlank(t, 10), 12, forbidden, false)

	if s.stash == nil || s.stash.Length() != 10 {
		t.Fatalf("stash = %v, want plank of length 10", s.stash)
	}
	if s.selected.Count() != 0 {
		t.Errorf("selected = %q, want empty", s.selected)
	}
}

func TestStep_StashOverwriteDropsToRemaining(t *testing.T) {
	// Only one stash slot exists: the latest colliding plank replaces the
	// previous one, which falls back to remaining.
	forbidden := junctionSetOf([]Junction{4})
	s := step{}.place(mustPlank(t, 4), 10, forbidden, false)
	s = s.place(mustPlank(t, 4), 10, forbidden, false)

	if s.stash == nil {
		t.Fatal("stash emptied by overwrite, want latest plank held")
	}
	if got := s.remaining.Count(); got != 1 {
		t.Errorf("remaining count = %d, want 1 (the replaced stash plank)", got)
	}
}

func TestStep_RetryCollisionGoesToRemaining(t *testing.T) {
	forbidden := junctionSetOf([]Junction{10})
	s := step{}.place(mustPlank(t, 10), 12, forbidden, true)

	if s.stash != nil {
		t.Error("retry re-stashed the plank, want it dropped to remaining")
	}
	if got := s.remaining.String(); got != "10" {
		t.Errorf("remaining = %q, want %q", got, "10")
	}
}

func TestStep_String(t *testing.T) {
	s := step{}
	s.remaining, _ = FromLengths(8, 8, 5, 5, 5)
	s.selected, _ = FromLengths(8)

	want := "remaining = [8, 8, 5, 5, 5], selected = [8], stash = None"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStep_StringWithStash(t *testing.T) {
	p := mustPlank(t, 7)
	s := step{stash: &p}

	want := "remaining = [], selected = [], stash = 7"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSelectRow_StashRetrySucceeds(t *testing.T) {
	heap := mustHeap(t, 10, 2)
	s, err := selectRow(heap, 12, junctionSetOf([]Junction{10}))
	if err != nil {
		t.Fatalf("selectRow() error = %v, want nil", err)
	}
	// The 10 collides at offset 10, waits in the stash, and lands after the
	// 2 moved the running total.
	if got := s.selected.String(); got != "2, 10" {
		t.Errorf("selected = %q, want %q", got, "2, 10")
	}
}

func TestSelectRow_PartitionIsConservative(t *testing.T) {
	heap := mustHeap(t, 6, 6, 5, 5, 4, 4)
	s, err := selectRow(heap, 10, junctionSet{})
	if err != nil {
		t.Fatalf("selectRow() error = %v, want nil", err)
	}
	if got := s.selected.Count() + s.remaining.Count(); got != heap.Count() {
		t.Errorf("selected + remaining = %d planks, want %d", got, heap.Count())
	}
	if got := s.selected.TotalLength() + s.remaining.TotalLength(); got != heap.TotalLength() {
		t.Errorf("selected + remaining length = %d, want %d", got, heap.TotalLength())
	}
}
