// Package histogram computes the geometry of a stacked daily manpower chart.
//
// Every day gets an equal horizontal slot; the bar occupies a fixed fraction
// of it, centred. Bars are split into one segment per trade with a non-zero
// value that day, stacked bottom to top in trade order. Heights are scaled
// so the busiest day fills the chart.
package histogram

import (
	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/manpower"
)

// DefaultBarFraction is the share of a day slot covered by its bar.
const DefaultBarFraction = 0.7

// TickFractions are the heights, as fractions of the scale, that get a
// y-axis label.
var TickFractions = []float64{0, 0.5, 1}

// Chart is the drawing area of the histogram, in points. (Left, Bottom) is
// the origin of the axes.
type Chart struct {
	Left, Bottom  float64
	Width, Height float64

	// BarFraction defaults to DefaultBarFraction when zero.
	BarFraction float64
}

// Segment is one trade's share of a bar.
type Segment struct {
	// Trade indexes manpower.Summary.Trades.
	Trade  int
	Value  float64
	Y      float64
	Height float64
}

// Bar is one day's stack.
type Bar struct {
	Day   int
	Date  civil.Date
	X     float64
	Width float64
	// Center is the middle of the day's slot, used for the day label.
	Center   float64
	Total    float64
	Segments []Segment
}

// Tick is a y-axis reference label.
type Tick struct {
	Value float64
	Y     float64
}

// Histogram is the computed chart.
type Histogram struct {
	Chart Chart
	// Scale is the value drawn at full chart height.
	Scale float64
	// Slot is the horizontal space given to each day.
	Slot  float64
	Bars  []Bar
	Ticks []Tick
}

// Layout stacks s into c.
func Layout(s manpower.Summary, c Chart) Histogram {
	if c.BarFraction <= 0 || c.BarFraction > 1 {
		c.BarFraction = DefaultBarFraction
	}
	h := Histogram{Chart: c, Scale: s.Scale()}

	for _, f := range TickFractions {
		h.Ticks = append(h.Ticks, Tick{Value: h.Scale * f, Y: c.Bottom + c.Height*f})
	}

	days := len(s.Dates)
	if days == 0 {
		return h
	}
	h.Slot = c.Width / float64(days)
	barWidth := h.Slot * c.BarFraction

	h.Bars = make([]Bar, days)
	for d := range days {
		bar := Bar{
			Day:    d,
			Date:   s.Dates[d],
			X:      c.Left + float64(d)*h.Slot + (h.Slot-barWidth)/2,
			Width:  barWidth,
			Center: c.Left + float64(d)*h.Slot + h.Slot/2,
			Total:  s.Totals[d],
		}
		var stacked float64
		for t := range s.Trades {
			v := s.Value(t, d)
			if v <= 0 {
				continue
			}
			seg := v / h.Scale * c.Height
			if seg <= 0 {
				continue
			}
			bar.Segments = append(bar.Segments, Segment{
				Trade:  t,
				Value:  v,
				Y:      c.Bottom + stacked,
				Height: seg,
			})
			stacked += seg
		}
		h.Bars[d] = bar
	}
	return h
}

// Top returns the y coordinate of the top of the bar's stack.
func (b Bar) Top() float64 {
	if len(b.Segments) == 0 {
		return 0
	}
	last := b.Segments[len(b.Segments)-1]
	return last.Y + last.Height
}
