package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sitegrid/pkg/fonts"
)

// OpKind identifies a recorded primitive.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpBox
	OpLine
	OpCircle
	OpText
	OpShowPage
)

func (k OpKind) String() string {
	return [...]string{"fill-rect", "stroke-rect", "box", "line", "circle", "text", "show-page"}[k]
}

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind OpKind
	// Page is the 0-based page the call was made on.
	Page int

	Rect           Rect
	X1, Y1, X2, Y2 float64
	// Radius is set for circles; the centre is (X1, Y1).
	Radius float64

	Fill, Stroke colorful.Color
	Width        float64

	Text  string
	Style TextStyle
}

// Recorder is a [Canvas] that stores every call in order.
type Recorder struct {
	Ops []Op

	fonts *fonts.Registry
	page  int
}

// NewRecorder returns an empty recorder. A nil registry uses the built-in fonts.
func NewRecorder(reg *fonts.Registry) *Recorder {
	if reg == nil {
		reg = fonts.Builtin()
	}
	return &Recorder{fonts: reg}
}

// PageCount returns the number of pages ended with ShowPage.
func (r *Recorder) PageCount() int { return r.page }

// Page returns the calls made on page n, excluding the page break.
func (r *Recorder) Page(n int) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Page == n && op.Kind != OpShowPage {
			out = append(out, op)
		}
	}
	return out
}

// Filter returns the calls of one kind on page n.
func (r *Recorder) Filter(n int, kind OpKind) []Op {
	var out []Op
	for _, op := range r.Page(n) {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// FindText returns the first text call on page n drawing exactly s.
func (r *Recorder) FindText(n int, s string) (Op, bool) {
	for _, op := range r.Filter(n, OpText) {
		if op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

func (r *Recorder) FillRect(rect Rect, fill colorful.Color) {
	r.add(Op{Kind: OpFillRect, Rect: rect, Fill: fill})
}

func (r *Recorder) StrokeRect(rect Rect, stroke colorful.Color, width float64) {
	r.add(Op{Kind: OpStrokeRect, Rect: rect, Stroke: stroke, Width: width})
}

func (r *Recorder) Box(rect Rect, fill, stroke colorful.Color, width float64) {
	r.add(Op{Kind: OpBox, Rect: rect, Fill: fill, Stroke: stroke, Width: width})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, stroke colorful.Color, width float64) {
	r.add(Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke, Width: width})
}

func (r *Recorder) Circle(cx, cy, radius float64, fill, stroke colorful.Color) {
	r.add(Op{Kind: OpCircle, X1: cx, Y1: cy, Radius: radius, Fill: fill, Stroke: stroke})
}

func (r *Recorder) Text(x, y float64, s string, style TextStyle) {
	r.add(Op{Kind: OpText, X1: x, Y1: y, Text: s, Style: style})
}

func (r *Recorder) TextWidth(s string, font fonts.Style, size float64) float64 {
	return r.fonts.Width(s, font, size)
}

func (r *Recorder) ShowPage() {
	r.add(Op{Kind: OpShowPage})
	r.page++
}

func (r *Recorder) add(op Op) {
	op.Page = r.page
	r.Ops = append(r.Ops, op)
}
