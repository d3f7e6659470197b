package io

import (
	"encoding/json"
	"io"
	"os"
	"slices"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/compose"
	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

type layoutOut struct {
	Range       schedule.DateRange `json:"range"`
	Grid        gridOut            `json:"grid"`
	Contractors []contractorOut    `json:"contractors"`
	Tasks       []taskOut          `json:"tasks"`
	Milestones  []milestoneOut     `json:"milestones"`
	Manpower    manpowerOut        `json:"manpower"`
	Hidden      compose.Hidden     `json:"hidden"`
	Dropped     int                `json:"dropped"`
}

type gridOut struct {
	Columns    int     `json:"columns"`
	Rows       int     `json:"rows"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
}

type contractorOut struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	BaseOffset int    `json:"base_offset"`
	Lanes      int    `json:"lanes"`
}

type taskOut struct {
	Contractor string     `json:"contractor"`
	Name       string     `json:"name"`
	Start      civil.Date `json:"start"`
	End        civil.Date `json:"end"`
	Lane       int        `json:"lane"`
	StackIndex int        `json:"stack_index"`
	Color      string     `json:"color"`
}

type milestoneOut struct {
	Name    string     `json:"name"`
	Date    civil.Date `json:"date"`
	Visible bool       `json:"visible"`
}

type manpowerOut struct {
	Dates          []civil.Date         `json:"dates"`
	Trades         []string             `json:"trades"`
	Series         map[string][]float64 `json:"series"`
	Totals         []float64            `json:"totals"`
	TotalManDays   float64              `json:"total_man_days"`
	WorkingDays    int                  `json:"working_days"`
	AvgAllDays     float64              `json:"avg_all_days"`
	AvgWorkingDays float64              `json:"avg_working_days"`
	Peak           float64              `json:"peak"`
	PeakDates      []civil.Date         `json:"peak_dates"`
}

// WriteLayout encodes a computed layout as indented JSON.
func WriteLayout(l *compose.Layout, w io.Writer) error {
	out := layoutOut{
		Range: l.Range,
		Grid: gridOut{
			Columns:    l.Grid.Cols,
			Rows:       l.Grid.Rows,
			X:          l.Grid.X,
			Y:          l.Grid.Y,
			Width:      l.Grid.Width,
			Height:     l.Grid.Height,
			CellWidth:  l.Grid.CellWidth,
			CellHeight: l.Grid.CellHeight,
		},
		Contractors: make([]contractorOut, len(l.Plan.Bands)),
		Tasks:       make([]taskOut, len(l.Tasks)),
		Milestones:  make([]milestoneOut, len(l.Milestones)),
		Hidden:      l.Hidden,
		Dropped:     l.Dropped,
	}

	for i, b := range l.Plan.Bands {
		out.Contractors[i] = contractorOut{
			Name:       b.Contractor,
			Color:      l.Settings.ContractorColor(b.Contractor).Hex(),
			BaseOffset: b.BaseOffset,
			Lanes:      b.Lanes,
		}
	}
	for i, t := range l.Tasks {
		a := l.Plan.Assignments[i]
		out.Tasks[i] = taskOut{
			Contractor: t.Contractor,
			Name:       t.Name,
			Start:      t.Start,
			End:        t.End(),
			Lane:       a.Lane,
			StackIndex: a.StackIndex(),
			Color:      l.Shades[i].Hex(),
		}
	}
	for i, m := range l.Milestones {
		out.Milestones[i] = milestoneOut{Name: m.Name, Date: m.Date, Visible: l.Range.Contains(m.Date)}
	}

	s := l.Summary
	out.Manpower = manpowerOut{
		Dates:          s.Dates,
		Trades:         nonNil(s.Trades),
		Series:         make(map[string][]float64, len(s.Trades)),
		Totals:         s.Totals,
		TotalManDays:   s.TotalManDays,
		WorkingDays:    s.WorkingDays,
		AvgAllDays:     s.AvgAllDays,
		AvgWorkingDays: s.AvgWorkingDays,
		Peak:           s.Peak,
		PeakDates:      nonNil(s.PeakDates),
	}
	for i, trade := range s.Trades {
		out.Manpower.Series[trade] = s.Series[i]
	}

	return encode(w, out)
}

// ExportLayout writes a layout to a JSON file at path.
// This is a convenience wrapper around [WriteLayout] for file-based output.
func ExportLayout(l *compose.Layout, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteLayout(l, w) })
}

// ExportSchedule writes an input to a JSON schedule file at path.
func ExportSchedule(in *schedule.Input, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteSchedule(in, w) })
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "close %s", path)
	}
	return nil
}

type scheduleOut struct {
	Start      *civil.Date          `json:"start,omitempty"`
	End        *civil.Date          `json:"end,omitempty"`
	Milestones []schedule.Milestone `json:"milestones"`
	Tasks      []schedule.Task      `json:"tasks"`
	Manpower   []tradeOut           `json:"manpower"`
}

type tradeOut struct {
	Trade string                 `json:"trade"`
	Days  map[civil.Date]float64 `json:"days"`
}

// WriteSchedule encodes an input in the schedule format read by
// [ReadSchedule], so it can be re-imported unchanged. Gaps are not written.
func WriteSchedule(in *schedule.Input, w io.Writer) error {
	out := scheduleOut{
		Milestones: nonNil(in.Milestones),
		Tasks:      nonNil(in.Tasks),
		Manpower:   []tradeOut{},
	}
	if in.Range != nil {
		out.Start, out.End = &in.Range.Start, &in.Range.End
	}
	if in.Manpower != nil {
		for _, trade := range in.Manpower.Trades {
			days := in.Manpower.ByTrade[trade]
			if days == nil {
				days = map[civil.Date]float64{}
			}
			out.Manpower = append(out.Manpower, tradeOut{Trade: trade, Days: days})
		}
	}
	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "encode")
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clip(s)
}
