// Package deck renders computed calepinage layouts to interchange and
// visual formats.
//
// Two sinks are provided:
//
//   - [RenderJSON] emits a pretty-printed JSON document with per-row plank
//     positions and junction offsets, suitable for external tooling or
//     round-tripping.
//   - [RenderSVG] emits a standalone SVG drawing of the deck, one rect per
//     plank, rows stacked top to bottom.
//
// Both sinks take the layout and deck by value and are safe to call
// concurrently.
package deck
