package calepinage

import (
	"fmt"
	"strconv"

	"github.com/tbonnin/calepin/pkg/errors"
)

// junctionSet is a constraint set of forbidden seam offsets, built from the
// previous row's junctions. Empty for the first row.
type junctionSet map[Junction]struct{}

func junctionSetOf(junctions []Junction) junctionSet {
	set := make(junctionSet, len(junctions))
	for _, j := range junctions {
		set[j] = struct{}{}
	}
	return set
}

func (s junctionSet) contains(j Junction) bool {
	_, ok := s[j]
	return ok
}

// step is the transient working state of one row's selection. Its three
// parts are disjoint and their union is always the row's input heap:
// planks move between selected, remaining, and the one-plank stash, but
// never disappear.
type step struct {
	remaining PlankHeap
	selected  PlankHeap
	stash     *Plank
}

// place routes one plank through the accept/reject/stash decision against
// the current state. The order of the checks is observable behavior:
//
//  1. overshooting the goal rejects the plank into remaining,
//  2. a trailing seam landing on a forbidden junction stashes the plank
//     (the previously stashed plank, if any, drops to remaining),
//  3. otherwise the plank is accepted and the running total advances.
//
// During the retry pass a colliding plank goes straight to remaining: the
// stash grants exactly one second chance, never a third.
func (s step) place(p Plank, goal int, forbidden junctionSet, retry bool) step {
	running := s.selected.TotalLength()
	switch {
	case running+p.length > goal:
		s.remaining = s.remaining.push(p)
	case forbidden.contains(Junction(running + p.length)):
		if retry {
			s.remaining = s.remaining.push(p)
			break
		}
		if s.stash != nil {
			s.remaining = s.remaining.push(*s.stash)
		}
		s.stash = &p
	default:
		s.selected = s.selected.push(p)
	}
	return s
}

// String renders the step's diagnostic form, used in UNUSABLE_PLANKS
// messages: "remaining = [...], selected = [...], stash = <length or None>".
func (s step) String() string {
	stash := "None"
	if s.stash != nil {
		stash = strconv.Itoa(s.stash.length)
	}
	return fmt.Sprintf("remaining = [%s], selected = [%s], stash = %s", s.remaining, s.selected, stash)
}

// selectRow partitions the heap into a row selection and leftovers.
//
// It walks the heap's planks in their current order, routing each through
// [step.place], then gives the stashed plank (if any) one retry against the
// updated state: later acceptances may have shifted the running total past
// the collision, or may finally disqualify the plank for good.
//
// On success the returned step's selected heap holds the row's planks in
// placement order and remaining feeds the next row. Failure to reach the
// goal yields NOT_ENOUGH_PLANKS when nothing is left anywhere, and
// UNUSABLE_PLANKS (with the step diagnostic) when planks remain but every
// one of them overshoots the gap or reproduces a forbidden seam.
func selectRow(heap PlankHeap, goal int, forbidden junctionSet) (step, error) {
	s := step{}
	for _, p := range heap.planks {
		s = s.place(p, goal, forbidden, false)
	}
	if s.stash != nil {
		p := *s.stash
		s.stash = nil
		s = s.place(p, goal, forbidden, true)
	}

	if s.selected.TotalLength() < goal {
		if s.remaining.TotalLength() == 0 {
			return s, errors.New(errors.ErrCodeNotEnoughPlanks,
				"row needs %d more length units and no planks remain", goal-s.selected.TotalLength())
		}
		return s, errors.New(errors.ErrCodeUnusablePlanks,
			"no usable plank reaches the row goal: %s", s)
	}
	return s, nil
}
