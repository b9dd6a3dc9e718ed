// Package calepinage computes deck-plank layouts.
//
// Given a heap of planks of various lengths and a target deck (length ×
// width), [Calepine] arranges the planks into width-many parallel rows so
// that every row's total length reaches the deck length while no seam
// between two planks lines up with a seam in the row laid just before it.
// Aligned seams are both a structural and an aesthetic defect in
// deck-building, so the selector treats them as hard collisions.
//
// # Algorithm
//
// The heap is sorted once, descending by length, before the first row is
// laid. Each row is then filled by a single greedy pass over the remaining
// planks:
//
//   - a plank that would overshoot the row goal is rejected,
//   - a plank whose trailing seam would land on a junction of the previous
//     row is set aside in a one-plank stash,
//   - everything else is accepted in order.
//
// After the pass, the stashed plank (if any) gets exactly one more chance
// against the updated running total; if it still collides or overshoots it
// is dropped back to the remaining heap. This is a narrow heuristic, not a
// backtracking search: a feasible layout can exist that Calepine fails to
// find, and that limitation is deliberate.
//
// # Value semantics
//
// [PlankHeap], [Line], and [Calepinage] are built through methods that
// return new values. Intermediate states stay valid and inspectable; no
// mutation is visible through shared slices.
//
// # Example
//
//	heap, _ := calepinage.FromLengths(10, 10, 2, 2)
//	deck, _ := calepinage.NewDeck(12, 2)
//	layout, err := calepinage.Calepine(heap, deck)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(layout) // Calepinage([10, 2], [2, 10])
package calepinage
