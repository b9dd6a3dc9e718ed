package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbonnin/calepin/pkg/calepinage"
	"github.com/tbonnin/calepin/pkg/errors"
	"github.com/tbonnin/calepin/pkg/plan"
	"github.com/tbonnin/calepin/pkg/render/deck"
)

// Output format constants.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatSVG:  true,
}

// validateFormat checks that a format is valid.
func validateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json, svg)", format)
	}
	return nil
}

// planCommand creates the plan command for computing a deck layout.
func (c *CLI) planCommand() *cobra.Command {
	var (
		format    string
		output    string
		junctions bool
	)

	cmd := &cobra.Command{
		Use:   "plan [plan.toml]",
		Short: "Compute a deck layout from a plan file",
		Long: `Compute a deck layout from a plan file.

The plan command reads a TOML plan describing the deck dimensions and the
plank inventory, lays the planks row by row, and prints the resulting rows.
Seams never line up between consecutive rows.

Use --format to export the layout as JSON or SVG instead of text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return c.runPlan(args[0], format, output, junctions)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format: text (default), json, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (json/svg formats; default derived from input)")
	cmd.Flags().BoolVar(&junctions, "junctions", false, "mark seam offsets in SVG output")

	return cmd
}

// runPlan loads the plan, computes the layout, and emits it.
func (c *CLI) runPlan(input, format, output string, junctions bool) error {
	heap, d, err := plan.Load(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("plan loaded", "planks", heap.Count(), "deck_length", d.Length(), "deck_width", d.Width())

	pr := newProgress(c.Logger)
	layout, err := calepinage.Calepine(heap, d, calepinage.WithLogger(c.Logger))
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	pr.done(fmt.Sprintf("Laid %d rows", len(layout.Lines())))

	switch format {
	case FormatJSON:
		data, err := deck.RenderJSON(layout, d, deck.WithJSONSource(input))
		if err != nil {
			return err
		}
		return writeArtifact(data, input, output, FormatJSON)
	case FormatSVG:
		opts := []deck.SVGOption{}
		if junctions {
			opts = append(opts, deck.WithJunctionMarks())
		}
		return writeArtifact(deck.RenderSVG(layout, d, opts...), input, output, FormatSVG)
	default:
		printLayout(layout, heap)
		return nil
	}
}

// printLayout prints the styled text form of the layout.
func printLayout(layout calepinage.Calepinage, heap calepinage.PlankHeap) {
	lines := layout.Lines()
	printSuccess("Deck laid out")
	placed := 0
	for i, l := range lines {
		printRow(i, l.String())
		placed += len(l.Planks())
	}
	leftover := heap.Count() - placed
	printStats(len(lines), placed, leftover)
	if leftover > 0 {
		printWarning("%d planks bought but not laid; the inventory overshoots the deck", leftover)
	}
}

// writeArtifact writes rendered output to the requested file, deriving the
// name from the input plan when none is given. "-" writes to stdout.
func writeArtifact(data []byte, input, output, format string) error {
	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if output == "" {
		output = artifactPath(input, format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printFile(output)
	return nil
}

// artifactPath derives an output filename from the input plan path,
// e.g. "deck.toml" → "deck.svg".
func artifactPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
