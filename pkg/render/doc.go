// Package render is the drawing boundary of sitegrid.
//
// # Overview
//
// Layout packages decide what goes where; this package turns those decisions
// into a document. Composers issue an ordered sequence of primitive calls on a
// [Canvas]:
//
//   - filled, outlined and filled+outlined rectangles
//   - lines and circles
//   - left, right or centre aligned text in a registered font
//   - text width measurement
//   - page breaks
//
// Coordinates are points with the origin at the bottom-left corner of the
// page and y growing upwards. [MM] converts millimetres to points.
//
// # Canvases
//
// [SVG] writes each page as a standalone SVG document, flipping the y axis.
// [Recorder] keeps the calls in memory and is used by tests to check
// geometry without parsing output.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG pages with the external rsvg-convert tool
// (from librsvg). ToPDF joins several pages into one PDF:
//
//	c := render.NewSVG(w, h, reg)
//	// ... draw, c.ShowPage(), draw ...
//	pdf, err := render.ToPDF(ctx, c.Pages())
//	png, err := render.ToPNG(ctx, c.Pages()[0], 2.0)
//
// # Opening Output
//
// [Open] hands a finished file to the desktop viewer. Callers treat its
// failure as informational.
package render
