package compose

import (
	"slices"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/calendar"
	"github.com/matzehuels/sitegrid/pkg/fonts"
	"github.com/matzehuels/sitegrid/pkg/render"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

const mm = render.MM

// Page 1 geometry.
const (
	titleSize       = 18.0
	subtitleSize    = 12.0
	outlineWidth    = 1.3
	gridLineWidth   = 0.7
	copyrightSize   = 8.0
	dateLabelSize   = 10.0
	dateLabelFormat = "Mon 02 Jan"

	barHeight     = 4 * mm
	barSpacing    = 1.5 * mm
	barBaseOffset = 6 * mm
	barInset      = 1 * mm
	barLabelSize  = 9.0
	barLabelRunes = 25

	dotRadius         = 2 * mm
	dotInset          = 4 * mm
	dotTopOffset      = 6 * mm
	dotSpacing        = 2*dotRadius + 2*mm
	dotFloor          = 3 * mm
	milestoneSize     = 8.0
	milestoneRunes    = 30
	legendBox         = 5 * mm
	legendItemSpacing = 8 * mm
	legendSize        = 8.0
)

func drawPlanPage(c render.Canvas, l *Layout) {
	s := l.Settings
	g := l.Grid
	pageWidth := s.Geometry.PageWidth

	titleY := g.Top() + s.Geometry.HeaderHeight - 7*mm
	c.Text(pageWidth/2, titleY, s.PlanTitle, render.TextStyle{Font: fonts.Bold, Size: titleSize, Align: render.AlignCenter})
	c.Text(pageWidth/2, titleY-5*mm, l.Subtitle, render.TextStyle{Size: subtitleSize, Align: render.AlignCenter})

	for _, cell := range g.Cells {
		c.FillRect(cellRect(g, cell), s.Background(cell.Background))
	}

	c.StrokeRect(render.Rect{X: g.X, Y: g.Y, W: g.Width, H: g.Height}, render.Black, outlineWidth)
	for _, x := range g.ColumnLines() {
		c.Line(x, g.Y, x, g.Top(), render.Black, gridLineWidth)
	}
	for _, y := range g.RowLines() {
		c.Line(g.X, y, g.X+g.Width, y, render.Black, gridLineWidth)
	}

	drawTaskBars(c, l)
	drawMilestones(c, l)
	drawContractorLegend(c, l)

	dateStyle := render.TextStyle{Font: fonts.Bold, Size: dateLabelSize}
	for _, cell := range g.Cells {
		c.Text(cell.X+3*mm, cell.Y+g.CellHeight-4*mm, formatDate(cell.Date, dateLabelFormat), dateStyle)
	}

	drawCopyright(c, s)
	c.ShowPage()
}

func cellRect(g *calendar.Grid, cell calendar.Cell) render.Rect {
	return render.Rect{X: cell.X, Y: cell.Y, W: g.CellWidth, H: g.CellHeight}
}

// drawTaskBars draws one bar per visible day of every task, at the task's
// stack slot inside the day cell.
func drawTaskBars(c render.Canvas, l *Layout) {
	g := l.Grid
	labelStyle := render.TextStyle{Size: barLabelSize, Color: render.White}

	for i, t := range l.Tasks {
		a := l.Plan.Assignments[i]
		label := truncate(t.Name, barLabelRunes)
		from, to := t.Start, t.End()
		if from.Before(l.Range.Start) {
			from = l.Range.Start
		}
		if to.After(l.Range.End) {
			to = l.Range.End
		}
		for d := from; !d.After(to); d = d.AddDays(1) {
			cell, ok := g.Cell(d)
			if !ok {
				continue
			}
			bar := render.Rect{
				X: cell.X + barInset,
				Y: cell.Y + barBaseOffset + float64(a.StackIndex())*(barHeight+barSpacing),
				W: g.CellWidth - 2*barInset,
				H: barHeight,
			}
			c.FillRect(bar, l.Shades[i])
			c.Text(bar.X+1.5*mm, bar.Y+bar.H/2-barLabelSize*0.35, label, labelStyle)
		}
	}
}

// drawMilestones stacks the milestones of each day downwards from the top
// right corner of its cell, stopping before they reach the bottom.
func drawMilestones(c render.Canvas, l *Layout) {
	g := l.Grid
	s := l.Settings

	byDate := make(map[civil.Date][]schedule.Milestone)
	var dates []civil.Date
	for _, m := range l.Milestones {
		if !l.Range.Contains(m.Date) {
			continue
		}
		if _, seen := byDate[m.Date]; !seen {
			dates = append(dates, m.Date)
		}
		byDate[m.Date] = append(byDate[m.Date], m)
	}
	slices.SortFunc(dates, func(a, b civil.Date) int { return a.DaysSince(b) })

	labelStyle := render.TextStyle{Size: milestoneSize, Align: render.AlignRight}
	for _, d := range dates {
		cell, ok := g.Cell(d)
		if !ok {
			continue
		}
		cx := cell.X + g.CellWidth - dotInset
		top := cell.Y + g.CellHeight - dotTopOffset
		for i, m := range byDate[d] {
			cy := top - float64(i)*dotSpacing
			if cy-dotRadius < cell.Y+dotFloor {
				break
			}
			c.Circle(cx, cy, dotRadius, s.MilestoneColor, s.MilestoneColor)
			c.Text(cx-(dotRadius+2*mm), cy-milestoneSize*0.35, truncate(m.Name, milestoneRunes), labelStyle)
		}
	}
}

// drawContractorLegend lays contractor swatches out left to right in the
// bottom margin, in stacking order.
func drawContractorLegend(c render.Canvas, l *Layout) {
	s := l.Settings
	y := s.Geometry.Margin / 2
	x := l.Grid.X
	style := render.TextStyle{Size: legendSize}

	for _, name := range l.Plan.Contractors() {
		c.Box(render.Rect{X: x, Y: y - legendBox/2, W: legendBox, H: legendBox},
			s.ContractorColor(name), render.Black, gridLineWidth)
		textX := x + legendBox + 2*mm
		c.Text(textX, y-legendBox/4, name, style)
		x = textX + c.TextWidth(name, fonts.Regular, legendSize) + legendItemSpacing
	}
}

func drawCopyright(c render.Canvas, s Settings) {
	if s.Copyright == "" {
		return
	}
	c.Text(s.Geometry.PageWidth/2, s.Geometry.Margin/3, s.Copyright,
		render.TextStyle{Size: copyrightSize, Align: render.AlignCenter})
}
