package compose

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sitegrid/pkg/calendar"
	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/histogram"
	"github.com/matzehuels/sitegrid/pkg/lanes"
	"github.com/matzehuels/sitegrid/pkg/manpower"
	"github.com/matzehuels/sitegrid/pkg/render"
	"github.com/matzehuels/sitegrid/pkg/schedule"
	"github.com/matzehuels/sitegrid/pkg/shade"
)

// Document is the schedule data for one render.
type Document struct {
	Range      schedule.DateRange
	Milestones []schedule.Milestone
	Tasks      []schedule.Task
	Manpower   *schedule.Manpower
}

// Hidden counts records that are valid but fall entirely outside the range.
// They are left off the page; hidden tasks still take part in lane
// assignment.
type Hidden struct {
	Milestones int `json:"milestones"`
	Tasks      int `json:"tasks"`
}

// Layout is the fully computed document.
type Layout struct {
	Settings Settings
	Range    schedule.DateRange
	Subtitle string

	Grid       *calendar.Grid
	Milestones []schedule.Milestone
	Tasks      []schedule.Task
	Plan       lanes.Plan
	// Shades holds one colour per task, parallel to Tasks.
	Shades []colorful.Color

	Summary   manpower.Summary
	Histogram histogram.Histogram

	Hidden Hidden
	// Dropped counts tasks with no usable start or a duration below one.
	Dropped int
}

// Build computes the layout for doc. It fails only on configuration errors:
// an inverted range or page geometry that leaves no drawing area.
func Build(doc Document, s Settings) (*Layout, error) {
	if doc.Range.End.Before(doc.Range.Start) {
		return nil, errors.New(errors.ErrCodeInvalidRange,
			"end date %s is before start date %s", doc.Range.End, doc.Range.Start)
	}
	grid, err := calendar.Build(doc.Range, s.Columns, s.Geometry, s.Classifier)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Settings:   s,
		Range:      doc.Range,
		Subtitle:   s.Subtitle(doc.Range),
		Grid:       grid,
		Milestones: doc.Milestones,
	}

	for _, t := range doc.Tasks {
		if !t.Valid() {
			l.Dropped++
			continue
		}
		l.Tasks = append(l.Tasks, t)
		if t.End().Before(doc.Range.Start) || t.Start.After(doc.Range.End) {
			l.Hidden.Tasks++
		}
	}
	for _, m := range doc.Milestones {
		if !doc.Range.Contains(m.Date) {
			l.Hidden.Milestones++
		}
	}

	l.Plan = lanes.Assign(l.Tasks, s.Priority)
	l.Shades = make([]colorful.Color, len(l.Tasks))
	for i, a := range l.Plan.Assignments {
		l.Shades[i] = shade.For(s.ContractorColor(a.Contractor), a.Ordinal, a.Siblings)
	}

	l.Summary = manpower.Aggregate(doc.Manpower, doc.Range)
	l.Histogram = histogram.Layout(l.Summary, newManpowerFrame(s.Geometry).chart())
	return l, nil
}

// Draw emits both pages of l onto c.
func Draw(c render.Canvas, l *Layout) {
	drawPlanPage(c, l)
	drawManpowerPage(c, l)
}

// Render builds doc and draws it onto c.
func Render(c render.Canvas, doc Document, s Settings) (*Layout, error) {
	l, err := Build(doc, s)
	if err != nil {
		return nil, err
	}
	Draw(c, l)
	return l, nil
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
