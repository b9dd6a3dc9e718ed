package deck

import (
	"bytes"
	"fmt"

	"github.com/tbonnin/calepin/pkg/calepinage"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale     float64 // horizontal pixels per length unit
	rowHeight float64
	junctions bool
}

// WithScale sets the horizontal scale in pixels per length unit.
// The default fits a deck row into 800 pixels.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithRowHeight sets the row height in pixels (default 40).
func WithRowHeight(h float64) SVGOption { return func(r *svgRenderer) { r.rowHeight = h } }

// WithJunctionMarks draws a tick at every seam offset, making the
// seam-avoidance pattern visible at a glance.
func WithJunctionMarks() SVGOption { return func(r *svgRenderer) { r.junctions = true } }

const (
	defaultFrameWidth = 800.0
	defaultRowHeight  = 40.0
	plankGap          = 2.0 // visual gap between planks within a row
)

// Plank fill colors, alternated along each row so adjacent boards are
// distinguishable even without junction marks.
var plankFills = []string{"#c8a165", "#b08b52"}

// RenderSVG draws the layout as a standalone SVG: rows stacked top to
// bottom in laying order, one rect per plank, widths proportional to plank
// lengths against the deck length.
func RenderSVG(layout calepinage.Calepinage, d calepinage.Deck, opts ...SVGOption) []byte {
	r := svgRenderer{rowHeight: defaultRowHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale == 0 {
		r.scale = defaultFrameWidth / float64(d.Length())
	}

	lines := layout.Lines()
	frameW := float64(d.Length()) * r.scale
	frameH := float64(len(lines)) * r.rowHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)

	for i, line := range lines {
		y := float64(i) * r.rowHeight
		renderRow(&buf, &r, line, y)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRow(buf *bytes.Buffer, r *svgRenderer, line calepinage.Line, y float64) {
	x := 0.0
	for i, p := range line.Planks() {
		w := float64(p.Length()) * r.scale
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#5c4326" stroke-width="1"/>`+"\n",
			x+plankGap/2, y+plankGap/2, w-plankGap, r.rowHeight-plankGap, plankFills[i%len(plankFills)])
		x += w
	}

	if r.junctions {
		for _, j := range line.Junctions() {
			jx := float64(j) * r.scale
			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#8b0000" stroke-width="1.5"/>`+"\n",
				jx, y, jx, y+r.rowHeight)
		}
	}
}
