package calendar

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// Geometry is the page area available to a grid, in points.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	HeaderHeight float64
}

// Usable returns the drawing area left after margins and the header band.
func (g Geometry) Usable() (width, height float64) {
	return g.PageWidth - 2*g.Margin, g.PageHeight - 2*g.Margin - g.HeaderHeight
}

// Validate fails with an INVALID_GEOMETRY error when nothing is left to draw on.
func (g Geometry) Validate() error {
	w, h := g.Usable()
	if w <= 0 || h <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"margins and header too large for page size (usable area %.1f x %.1f)", w, h)
	}
	return nil
}

// Cell is one day placed on the grid. X and Y locate its bottom-left corner.
type Cell struct {
	Date       civil.Date
	Row, Col   int
	X, Y       float64
	Background Background
}

// Grid is the computed layout for a date range.
type Grid struct {
	Range      schedule.DateRange
	Cols, Rows int

	// X, Y, Width and Height describe the full grid rectangle.
	X, Y          float64
	Width, Height float64

	CellWidth, CellHeight float64

	// Cells holds one entry per day, in date order.
	Cells []Cell
}

// Build lays out rng on a grid with cols columns inside geom.
//
// The number of rows is ceil(days/cols). Day idx lands in column idx%cols
// and row (rows-1)-idx/cols, so the first day sits in the top-left cell.
func Build(rng schedule.DateRange, cols int, geom Geometry, cls Classifier) (*Grid, error) {
	if rng.End.Before(rng.Start) {
		return nil, errors.New(errors.ErrCodeInvalidRange, "end date %s is before start date %s", rng.End, rng.Start)
	}
	if err := errors.ValidateColumns(cols); err != nil {
		return nil, err
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	days := rng.Days()
	rows := (days + cols - 1) / cols
	width, height := geom.Usable()

	g := &Grid{
		Range:      rng,
		Cols:       cols,
		Rows:       rows,
		X:          geom.Margin,
		Y:          geom.Margin,
		Width:      width,
		Height:     height,
		CellWidth:  width / float64(cols),
		CellHeight: height / float64(rows),
		Cells:      make([]Cell, days),
	}

	for idx := range days {
		d := rng.Start.AddDays(idx)
		col := idx % cols
		row := (rows - 1) - idx/cols
		g.Cells[idx] = Cell{
			Date:       d,
			Row:        row,
			Col:        col,
			X:          g.X + float64(col)*g.CellWidth,
			Y:          g.Y + float64(row)*g.CellHeight,
			Background: cls.Classify(d),
		}
	}
	return g, nil
}

// Cell returns the cell for d, or false when d is outside the grid's range.
func (g *Grid) Cell(d civil.Date) (Cell, bool) {
	idx := g.Range.Offset(d)
	if idx < 0 || idx >= len(g.Cells) {
		return Cell{}, false
	}
	return g.Cells[idx], true
}

// Top returns the y coordinate of the grid's upper edge.
func (g *Grid) Top() float64 { return g.Y + g.Height }

// ColumnLines returns the x positions of the inner vertical grid lines.
func (g *Grid) ColumnLines() []float64 {
	xs := make([]float64, 0, g.Cols-1)
	for c := 1; c < g.Cols; c++ {
		xs = append(xs, g.X+float64(c)*g.CellWidth)
	}
	return xs
}

// RowLines returns the y positions of the inner horizontal grid lines.
func (g *Grid) RowLines() []float64 {
	ys := make([]float64, 0, max(0, g.Rows-1))
	for r := 1; r < g.Rows; r++ {
		ys = append(ys, g.Y+float64(r)*g.CellHeight)
	}
	return ys
}

// Weekend reports whether the cell is classified as a weekend day.
func (c Cell) Weekend() bool { return c.Background.Class == ClassWeekend }

// Month returns the cell's calendar month.
func (c Cell) Month() time.Month { return c.Date.Month }
