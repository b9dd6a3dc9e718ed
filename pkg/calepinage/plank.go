package calepinage

import "github.com/tbonnin/calepin/pkg/errors"

const (
	// MaxPlankLength is the longest plank the engine accepts, in length units.
	// Longer boards don't exist in any catalogue this tool targets, so a
	// larger value almost certainly indicates a unit mix-up in the input.
	MaxPlankLength = 10_000

	// MaxDeckLength is the longest deck row the engine accepts.
	MaxDeckLength = 1_000_000
)

// Plank is a single board with a fixed length. It is immutable: the only way
// to obtain one is [NewPlank], which enforces the length bounds, so no later
// code re-validates plank lengths.
type Plank struct {
	length int
}

// NewPlank creates a plank of the given length.
// Returns INVALID_PLANK if length is not positive or exceeds [MaxPlankLength].
func NewPlank(length int) (Plank, error) {
	if length <= 0 {
		return Plank{}, errors.New(errors.ErrCodeInvalidPlank, "plank length must be positive, got %d", length)
	}
	if length > MaxPlankLength {
		return Plank{}, errors.New(errors.ErrCodeInvalidPlank, "plank length %d exceeds maximum %d", length, MaxPlankLength)
	}
	return Plank{length: length}, nil
}

// Length returns the plank's length.
func (p Plank) Length() int { return p.length }

// Deck is the target surface: Length is the row length goal and Width the
// number of rows to lay. Immutable once constructed.
type Deck struct {
	length int
	width  int
}

// NewDeck creates a deck of the given dimensions.
// Returns INVALID_DECK if either dimension is not positive or length exceeds
// [MaxDeckLength]. Values are never clamped.
func NewDeck(length, width int) (Deck, error) {
	if length <= 0 {
		return Deck{}, errors.New(errors.ErrCodeInvalidDeck, "deck length must be positive, got %d", length)
	}
	if width <= 0 {
		return Deck{}, errors.New(errors.ErrCodeInvalidDeck, "deck width must be positive, got %d", width)
	}
	if length > MaxDeckLength {
		return Deck{}, errors.New(errors.ErrCodeInvalidDeck, "deck length %d exceeds maximum %d", length, MaxDeckLength)
	}
	return Deck{length: length, width: width}, nil
}

// Length returns the row length goal.
func (d Deck) Length() int { return d.length }

// Width returns the number of rows.
func (d Deck) Width() int { return d.width }
