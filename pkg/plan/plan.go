// Package plan loads deck plans from TOML files.
//
// A plan describes the deck to cover and the plank inventory available for
// it:
//
//	[deck]
//	length = 12
//	width  = 2
//
//	[[planks]]
//	length = 10
//	count  = 2
//
//	[[planks]]
//	length = 2
//	count  = 2
//
// [Load] and [Parse] return validated calepinage values; dimension and
// length bounds are enforced by the calepinage constructors, so a plan that
// parses is ready to lay out.
package plan

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tbonnin/calepin/pkg/calepinage"
	"github.com/tbonnin/calepin/pkg/errors"
)

type planFile struct {
	Deck   deckSection    `toml:"deck"`
	Planks []plankSection `toml:"planks"`
}

type deckSection struct {
	Length int `toml:"length"`
	Width  int `toml:"width"`
}

type plankSection struct {
	Length int  `toml:"length"`
	Count  *int `toml:"count"` // pointer so an explicit 0 differs from omitted
}

// Load reads and parses a plan file from disk.
func Load(path string) (calepinage.PlankHeap, calepinage.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return calepinage.PlankHeap{}, calepinage.Deck{}, errors.Wrap(errors.ErrCodeInvalidPlan, err, "read plan %s", path)
	}
	return Parse(data)
}

// Parse decodes a TOML plan document into a validated heap and deck.
// Returns INVALID_PLAN for malformed TOML, a negative plank count, or an
// empty effective inventory; dimension errors keep their construction codes
// (INVALID_DECK, INVALID_PLANK). An omitted count means one plank, while an
// explicit count of zero skips the entry.
func Parse(data []byte) (calepinage.PlankHeap, calepinage.Deck, error) {
	var f planFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return calepinage.PlankHeap{}, calepinage.Deck{}, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode plan")
	}

	deck, err := calepinage.NewDeck(f.Deck.Length, f.Deck.Width)
	if err != nil {
		return calepinage.PlankHeap{}, calepinage.Deck{}, err
	}

	if len(f.Planks) == 0 {
		return calepinage.PlankHeap{}, calepinage.Deck{}, errors.New(errors.ErrCodeInvalidPlan, "plan has no plank inventory")
	}

	heap := calepinage.NewPlankHeap()
	for _, p := range f.Planks {
		count := 1 // count is optional; a bare entry means one plank
		if p.Count != nil {
			count = *p.Count
		}
		if count < 0 {
			return calepinage.PlankHeap{}, calepinage.Deck{}, errors.New(errors.ErrCodeInvalidPlan,
				"plank count must be non-negative, got %d for length %d", count, p.Length)
		}
		if count == 0 {
			continue // explicit zero declares the entry absent
		}
		if heap, err = heap.Add(count, p.Length); err != nil {
			return calepinage.PlankHeap{}, calepinage.Deck{}, err
		}
	}
	if heap.Count() == 0 {
		return calepinage.PlankHeap{}, calepinage.Deck{}, errors.New(errors.ErrCodeInvalidPlan, "plan has no plank inventory")
	}
	return heap, deck, nil
}
