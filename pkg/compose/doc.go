// Package compose turns a schedule into a two-page document.
//
// [Build] runs every layout step (calendar grid, lane assignment, task
// shades, manpower aggregation and histogram geometry) and returns a
// [Layout]. [Draw] replays a Layout onto a [render.Canvas]:
//
//   - page 1: title, day grid with month and weekend backgrounds, task bars
//     stacked in contractor bands, milestone dots, contractor legend
//   - page 2: manpower metrics, trade legend, stacked daily histogram
//
// [Render] does both. All geometry is recomputed per call; nothing is shared
// between calls.
//
// [render.Canvas]: github.com/matzehuels/sitegrid/pkg/render.Canvas
package compose
