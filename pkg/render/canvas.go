package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sitegrid/pkg/fonts"
)

// MM is one millimetre in points.
const MM = 72 / 25.4

// Common colours.
var (
	Black = colorful.Color{R: 0, G: 0, B: 0}
	White = colorful.Color{R: 1, G: 1, B: 1}
	Red   = colorful.Color{R: 1, G: 0, B: 0}
)

// Align selects which point of a text run sits at the given x.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// Rect is an axis-aligned rectangle with (X, Y) at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Font  fonts.Style
	Size  float64
	Color colorful.Color
	Align Align
}

// Canvas receives drawing calls. Implementations never report errors from
// individual primitives; failures surface when the result is written.
type Canvas interface {
	FillRect(r Rect, fill colorful.Color)
	StrokeRect(r Rect, stroke colorful.Color, width float64)
	// Box fills r and outlines it.
	Box(r Rect, fill, stroke colorful.Color, width float64)
	Line(x1, y1, x2, y2 float64, stroke colorful.Color, width float64)
	Circle(cx, cy, r float64, fill, stroke colorful.Color)
	// Text draws s with its baseline at y.
	Text(x, y float64, s string, style TextStyle)
	TextWidth(s string, font fonts.Style, size float64) float64
	// ShowPage ends the current page. Drawing afterwards starts a new one.
	ShowPage()
}
