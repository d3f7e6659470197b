// Package manpower turns per-trade daily headcounts into day-aligned series
// and summary figures for one date range.
//
// Aggregation is pure. Values that are not finite non-negative numbers are
// treated as absent and counted in [Summary.Skipped]; a bad cell never
// aborts the computation.
package manpower

import (
	"math"
	"slices"

	"cloud.google.com/go/civil"
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// Summary is the aggregated manpower for a date range.
type Summary struct {
	Range schedule.DateRange
	Dates []civil.Date

	// Trades is the stacking order. Series[i] holds the headcount of
	// Trades[i] for every entry of Dates, zero where no value was given.
	Trades []string
	Series [][]float64

	// Totals[d] is the sum over all trades on Dates[d].
	Totals []float64

	TotalManDays   float64
	WorkingDays    int
	AvgAllDays     float64
	AvgWorkingDays float64

	// Peak is the largest daily total. PeakDates lists every day that
	// reaches it and is empty when the peak is zero.
	Peak      float64
	PeakDates []civil.Date

	Skipped int
}

// Aggregate aligns m onto rng and computes totals and statistics.
// A nil m yields an all-zero summary.
func Aggregate(m *schedule.Manpower, rng schedule.DateRange) Summary {
	dates := rng.Dates()
	s := Summary{
		Range:  rng,
		Dates:  dates,
		Trades: tradeOrder(m),
		Totals: make([]float64, len(dates)),
	}

	for _, trade := range s.Trades {
		series := make([]float64, len(dates))
		for d, v := range m.ByTrade[trade] {
			idx := rng.Offset(d)
			if idx < 0 || idx >= len(dates) {
				continue
			}
			if !usable(v) {
				s.Skipped++
				continue
			}
			series[idx] += v
		}
		s.Series = append(s.Series, series)
		floats.Add(s.Totals, series)
	}

	s.TotalManDays = floats.Sum(s.Totals)
	for _, v := range s.Totals {
		if v > 0 {
			s.WorkingDays++
		}
	}
	if n := len(dates); n > 0 {
		s.AvgAllDays = s.TotalManDays / float64(n)
		s.Peak = floats.Max(s.Totals)
	}
	if s.WorkingDays > 0 {
		s.AvgWorkingDays = s.TotalManDays / float64(s.WorkingDays)
	}
	if s.Peak > 0 {
		for i, v := range s.Totals {
			if v == s.Peak {
				s.PeakDates = append(s.PeakDates, dates[i])
			}
		}
	}
	return s
}

// Value returns the headcount of trade index t on day index d.
func (s Summary) Value(t, d int) float64 { return s.Series[t][d] }

// Scale returns the value the chart's full height represents: the peak,
// or 1 when there is no manpower at all.
func (s Summary) Scale() float64 {
	if s.Peak <= 0 {
		return 1
	}
	return s.Peak
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// tradeOrder returns m.Trades followed by any trade that only appears in
// m.ByTrade, sorted by name.
func tradeOrder(m *schedule.Manpower) []string {
	if m == nil {
		return nil
	}
	order := slices.Clone(m.Trades)
	seen := make(map[string]bool, len(order))
	for _, t := range order {
		seen[t] = true
	}
	var extra []string
	for t := range m.ByTrade {
		if !seen[t] {
			extra = append(extra, t)
		}
	}
	slices.Sort(extra)
	return append(order, extra...)
}
