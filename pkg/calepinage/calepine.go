package calepinage

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a [Calepine] run.
type Option func(*config)

type config struct {
	logger *log.Logger
}

// WithLogger attaches a logger for per-row debug traces. Without it the run
// is silent.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Calepine lays out the heap's planks over the deck and returns the
// completed layout, one line per width unit.
//
// The heap is normalized first: rebuilt from its planks and sorted once,
// descending by length. Each row is then filled by [selectRow] under the
// previous row's junction constraint (empty for the first row), and the
// selector's leftovers become the next row's heap.
//
// The first failing row aborts the whole build: Calepine never returns a
// partial layout. Failures carry NOT_ENOUGH_PLANKS or UNUSABLE_PLANKS codes;
// see the package documentation for why a feasible layout may still be
// missed.
func Calepine(heap PlankHeap, deck Deck, opts ...Option) (Calepinage, error) {
	cfg := config{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(&cfg)
	}

	working := heap.sortedDescending()
	cfg.logger.Debug("heap normalized", "planks", working.Count(), "total", working.TotalLength())

	layout := Calepinage{}
	forbidden := junctionSet{}
	for row := 0; row < deck.Width(); row++ {
		s, err := selectRow(working, deck.Length(), forbidden)
		if err != nil {
			cfg.logger.Debug("row selection failed", "row", row, "err", err)
			return Calepinage{}, err
		}

		line := lineFromHeap(s.selected)
		layout = layout.WithLine(line)
		forbidden = junctionSetOf(line.Junctions())
		working = s.remaining
		cfg.logger.Debug("row laid", "row", row, "line", line.String(), "leftover", working.Count())
	}
	return layout, nil
}
