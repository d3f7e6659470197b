package calendar

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

var testGeom = Geometry{PageWidth: 700, PageHeight: 520, Margin: 10, HeaderHeight: 20}

func dec(d int) civil.Date { return civil.Date{Year: 2025, Month: time.December, Day: d} }

func TestBuildThreeDays(t *testing.T) {
	rng := schedule.DateRange{Start: dec(4), End: dec(6)}
	g, err := Build(rng, 7, testGeom, DefaultClassifier())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if g.Rows != 1 || g.Cols != 7 {
		t.Fatalf("grid = %dx%d, want 1x7", g.Rows, g.Cols)
	}
	if len(g.Cells) != 3 {
		t.Fatalf("len(Cells) = %d, want 3", len(g.Cells))
	}
	for i, c := range g.Cells {
		if c.Row != 0 {
			t.Errorf("cell %d row = %d, want 0", i, c.Row)
		}
		if c.Col != i {
			t.Errorf("cell %d col = %d, want %d", i, c.Col, i)
		}
	}

	// usable 680 x 480, cells 680/7 wide and 480 tall
	if g.CellWidth != 680.0/7 {
		t.Errorf("CellWidth = %v, want %v", g.CellWidth, 680.0/7)
	}
	if g.CellHeight != 480 {
		t.Errorf("CellHeight = %v, want 480", g.CellHeight)
	}
	if want := g.X + 2*g.CellWidth; g.Cells[2].X != want {
		t.Errorf("third cell X = %v, want %v", g.Cells[2].X, want)
	}
	if g.Cells[0].Y != 10 {
		t.Errorf("first cell Y = %v, want 10", g.Cells[0].Y)
	}
}

func TestBuildFirstDayTopLeft(t *testing.T) {
	rng := schedule.DateRange{Start: dec(1), End: dec(15)}
	g, err := Build(rng, 7, testGeom, DefaultClassifier())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Rows != 3 {
		t.Fatalf("Rows = %d, want 3", g.Rows)
	}

	first, _ := g.Cell(dec(1))
	if first.Row != 2 || first.Col != 0 {
		t.Errorf("first day at row %d col %d, want row 2 col 0", first.Row, first.Col)
	}
	eighth, _ := g.Cell(dec(8))
	if eighth.Row != 1 || eighth.Col != 0 {
		t.Errorf("eighth day at row %d col %d, want row 1 col 0", eighth.Row, eighth.Col)
	}
	last, _ := g.Cell(dec(15))
	if last.Row != 0 || last.Col != 0 {
		t.Errorf("last day at row %d col %d, want row 0 col 0", last.Row, last.Col)
	}
	if want := g.Y + 2*g.CellHeight; first.Y != want {
		t.Errorf("first day Y = %v, want %v", first.Y, want)
	}
}

func TestBuildCoverage(t *testing.T) {
	for _, days := range []int{1, 6, 7, 8, 30, 31, 90} {
		for _, cols := range []int{1, 5, 7, 10} {
			rng := schedule.DateRange{Start: dec(1), End: dec(1).AddDays(days - 1)}
			g, err := Build(rng, cols, testGeom, DefaultClassifier())
			if err != nil {
				t.Fatalf("Build(%d days, %d cols) error = %v", days, cols, err)
			}
			if want := (days + cols - 1) / cols; g.Rows != want {
				t.Errorf("%d days/%d cols: Rows = %d, want %d", days, cols, g.Rows, want)
			}

			seen := make(map[[2]int]civil.Date)
			for _, d := range rng.Dates() {
				c, ok := g.Cell(d)
				if !ok {
					t.Fatalf("%d days/%d cols: %v has no cell", days, cols, d)
				}
				key := [2]int{c.Row, c.Col}
				if prev, dup := seen[key]; dup {
					t.Fatalf("%d days/%d cols: %v and %v share cell %v", days, cols, prev, d, key)
				}
				seen[key] = d
			}
		}
	}
}

func TestCellOutsideRange(t *testing.T) {
	g, err := Build(schedule.DateRange{Start: dec(4), End: dec(6)}, 7, testGeom, DefaultClassifier())
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []civil.Date{dec(3), dec(7)} {
		if _, ok := g.Cell(d); ok {
			t.Errorf("Cell(%v) found, want miss", d)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	rng := schedule.DateRange{Start: dec(4), End: dec(6)}
	tests := []struct {
		name string
		rng  schedule.DateRange
		cols int
		geom Geometry
		code errors.Code
	}{
		{"inverted range", schedule.DateRange{Start: dec(6), End: dec(4)}, 7, testGeom, errors.ErrCodeInvalidRange},
		{"no columns", rng, 0, testGeom, errors.ErrCodeInvalidGeometry},
		{"margins eat width", rng, 7, Geometry{PageWidth: 20, PageHeight: 500, Margin: 10}, errors.ErrCodeInvalidGeometry},
		{"header eats height", rng, 7, Geometry{PageWidth: 500, PageHeight: 100, Margin: 10, HeaderHeight: 80}, errors.ErrCodeInvalidGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.rng, tt.cols, tt.geom, DefaultClassifier())
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestGridLines(t *testing.T) {
	g, err := Build(schedule.DateRange{Start: dec(1), End: dec(15)}, 7, testGeom, DefaultClassifier())
	if err != nil {
		t.Fatal(err)
	}
	if got := len(g.ColumnLines()); got != 6 {
		t.Errorf("len(ColumnLines()) = %d, want 6", got)
	}
	if got := len(g.RowLines()); got != 2 {
		t.Errorf("len(RowLines()) = %d, want 2", got)
	}
	if g.Top() != 10+480 {
		t.Errorf("Top() = %v, want 490", g.Top())
	}
}
