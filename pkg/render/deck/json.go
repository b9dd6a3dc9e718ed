package deck

import (
	"encoding/json"

	"github.com/tbonnin/calepin/pkg/calepinage"
	"github.com/tbonnin/calepin/pkg/errors"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	source string
}

// WithJSONSource records the plan file the layout was computed from, for
// provenance when documents are archived or diffed.
func WithJSONSource(path string) JSONOption {
	return func(r *jsonRenderer) { r.source = path }
}

type jsonOutput struct {
	Deck   jsonDeck  `json:"deck"`
	Source string    `json:"source,omitempty"`
	Rows   []jsonRow `json:"rows"`
}

type jsonDeck struct {
	Length int `json:"length"`
	Width  int `json:"width"`
}

type jsonRow struct {
	Index       int         `json:"index"`
	TotalLength int         `json:"total_length"`
	Planks      []jsonPlank `json:"planks"`
	Junctions   []int       `json:"junctions"`
}

type jsonPlank struct {
	X      int `json:"x"`
	Length int `json:"length"`
}

// RenderJSON exports the layout as a pretty-printed JSON document: deck
// dimensions, then one entry per row with each plank's cumulative x offset,
// the row total, and the row's junction offsets. Junctions are redundant
// with the positions but spare consumers the prefix-sum bookkeeping.
//
// RenderJSON returns an error only if JSON marshaling fails, which does not
// happen for well-formed layouts; such a failure surfaces as INTERNAL_ERROR.
func RenderJSON(layout calepinage.Calepinage, d calepinage.Deck, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	lines := layout.Lines()
	rows := make([]jsonRow, len(lines))
	for i, line := range lines {
		planks := line.Planks()
		jp := make([]jsonPlank, len(planks))
		x := 0
		for j, p := range planks {
			jp[j] = jsonPlank{X: x, Length: p.Length()}
			x += p.Length()
		}

		junctions := line.Junctions()
		ji := make([]int, len(junctions))
		for j, offset := range junctions {
			ji[j] = int(offset)
		}

		rows[i] = jsonRow{
			Index:       i,
			TotalLength: line.TotalLength(),
			Planks:      jp,
			Junctions:   ji,
		}
	}

	out := jsonOutput{
		Deck:   jsonDeck{Length: d.Length(), Width: d.Width()},
		Source: r.source,
		Rows:   rows,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return data, nil
}
