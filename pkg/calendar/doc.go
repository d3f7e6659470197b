// Package calendar maps an inclusive date range onto a paginated grid of
// day cells.
//
// Days fill the grid left to right, top to bottom, with a fixed number of
// columns. Coordinates follow the page convention used by the rest of the
// renderer: the origin is the bottom-left corner of the page and y grows
// upwards, so the first row of days has the highest row index.
//
//	grid, err := calendar.Build(rng, 7, geom, calendar.DefaultClassifier())
//	cell, ok := grid.Cell(date)
//
// Each cell also carries a background classification: weekend days take
// precedence, every other day is tagged with its month so the caller can
// pick one of twelve month colours.
package calendar
