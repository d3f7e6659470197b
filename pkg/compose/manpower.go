package compose

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/sitegrid/pkg/calendar"
	"github.com/matzehuels/sitegrid/pkg/fonts"
	"github.com/matzehuels/sitegrid/pkg/histogram"
	"github.com/matzehuels/sitegrid/pkg/manpower"
	"github.com/matzehuels/sitegrid/pkg/render"
)

// Page 2 geometry.
const (
	metricsSize      = 10.0
	metricsLine      = 5 * mm
	tradeLegendWidth = 50 * mm
	tradeLegendBox   = 4 * mm
	tradeLegendStep  = 4.5 * mm
	tradeLegendSize  = 9.0
	axisWidth        = 0.8
	segmentLabelSize = 7.0
	minLabelHeight   = 3 * mm
	yLabelSize       = 8.0
	xLabelSize       = 7.0
	xLabelFormat     = "02 Jan"
	minChartHeight   = 40 * mm
)

// manpowerFrame holds the fixed anchor points of the manpower page.
type manpowerFrame struct {
	pageWidth float64
	margin    float64
	titleY    float64
	subtitleY float64
	metricsY  float64
}

func newManpowerFrame(g calendar.Geometry) manpowerFrame {
	titleY := g.PageHeight - g.Margin - 18*mm
	subtitleY := titleY - 6*mm
	return manpowerFrame{
		pageWidth: g.PageWidth,
		margin:    g.Margin,
		titleY:    titleY,
		subtitleY: subtitleY,
		metricsY:  subtitleY - 10*mm,
	}
}

// chart spans the page between the margins, from 20mm above the bottom
// margin up to below the metrics block, and is never shorter than 40mm.
func (f manpowerFrame) chart() histogram.Chart {
	bottom := f.margin + 20*mm
	top := f.metricsY - 8*metricsLine
	return histogram.Chart{
		Left:        f.margin,
		Bottom:      bottom,
		Width:       f.pageWidth - 2*f.margin,
		Height:      max(top-bottom, minChartHeight),
		BarFraction: histogram.DefaultBarFraction,
	}
}

func drawManpowerPage(c render.Canvas, l *Layout) {
	s := l.Settings
	f := newManpowerFrame(s.Geometry)

	c.Text(f.pageWidth/2, f.titleY, s.ManpowerTitle, render.TextStyle{Font: fonts.Bold, Size: titleSize, Align: render.AlignCenter})
	c.Text(f.pageWidth/2, f.subtitleY, l.Subtitle, render.TextStyle{Size: subtitleSize, Align: render.AlignCenter})

	metrics := render.TextStyle{Size: metricsSize}
	for i, line := range MetricLines(l.Summary) {
		c.Text(f.margin, f.metricsY-float64(i)*metricsLine, line, metrics)
	}

	drawTradeLegend(c, l, f)
	drawHistogram(c, l)
	drawCopyright(c, s)
	c.ShowPage()
}

// MetricLines returns the summary block printed above the histogram.
func MetricLines(s manpower.Summary) []string {
	lines := []string{
		fmt.Sprintf("Total man-days: %.1f", s.TotalManDays),
		fmt.Sprintf("Average manpower (all days): %.2f", s.AvgAllDays),
		fmt.Sprintf("Average manpower (working days): %.2f", s.AvgWorkingDays),
		fmt.Sprintf("Number of working days: %d", s.WorkingDays),
	}
	if s.Peak > 0 {
		dates := make([]string, len(s.PeakDates))
		for i, d := range s.PeakDates {
			dates[i] = formatDate(d, xLabelFormat)
		}
		lines = append(lines, fmt.Sprintf("Peak manpower: %.1f on %s", s.Peak, strings.Join(dates, ", ")))
	} else {
		lines = append(lines, "Peak manpower: 0")
	}
	return lines
}

func drawTradeLegend(c render.Canvas, l *Layout, f manpowerFrame) {
	x := f.pageWidth - f.margin - tradeLegendWidth
	y := f.metricsY
	style := render.TextStyle{Size: tradeLegendSize}
	for i, trade := range l.Summary.Trades {
		c.Box(render.Rect{X: x, Y: y - tradeLegendBox/2, W: tradeLegendBox, H: tradeLegendBox},
			l.Settings.TradeColor(i), render.Black, gridLineWidth)
		c.Text(x+tradeLegendBox+2*mm, y-tradeLegendBox/3, trade, style)
		y -= tradeLegendStep
	}
}

func drawHistogram(c render.Canvas, l *Layout) {
	h := l.Histogram
	ch := h.Chart

	c.Line(ch.Left, ch.Bottom, ch.Left+ch.Width, ch.Bottom, render.Black, axisWidth)
	c.Line(ch.Left, ch.Bottom, ch.Left, ch.Bottom+ch.Height, render.Black, axisWidth)

	segStyle := render.TextStyle{Size: segmentLabelSize, Align: render.AlignCenter}
	for _, bar := range h.Bars {
		for _, seg := range bar.Segments {
			c.FillRect(render.Rect{X: bar.X, Y: seg.Y, W: bar.Width, H: seg.Height}, l.Settings.TradeColor(seg.Trade))
			if seg.Height >= minLabelHeight {
				c.Text(bar.X+bar.Width/2, seg.Y+seg.Height/2-2, SegmentLabel(seg.Value), segStyle)
			}
		}
	}

	yStyle := render.TextStyle{Size: yLabelSize, Align: render.AlignRight}
	for _, tick := range h.Ticks {
		c.Text(ch.Left-2*mm, tick.Y-2*mm, fmt.Sprintf("%.0f", tick.Value), yStyle)
	}

	xStyle := render.TextStyle{Size: xLabelSize, Align: render.AlignCenter}
	for _, bar := range h.Bars {
		c.Text(bar.Center, ch.Bottom-5*mm, formatDate(bar.Date, xLabelFormat), xStyle)
	}
}

// SegmentLabel prints whole headcounts without decimals.
func SegmentLabel(v float64) string {
	whole := math.Trunc(v)
	if math.Abs(v-whole) < 0.01 {
		return fmt.Sprintf("%d", int(whole))
	}
	return fmt.Sprintf("%.1f", v)
}
