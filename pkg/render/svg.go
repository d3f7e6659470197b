package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sitegrid/pkg/fonts"
)

// SVGOption configures an [SVG] canvas.
type SVGOption func(*SVG)

// WithTitle sets the <title> of every page.
func WithTitle(title string) SVGOption { return func(s *SVG) { s.title = title } }

// WithDescription sets the <desc> of every page.
func WithDescription(desc string) SVGOption { return func(s *SVG) { s.desc = desc } }

// WithEmbeddedFonts inlines the registered faces as base64 @font-face rules
// so the pages look the same on machines without the fonts installed.
func WithEmbeddedFonts() SVGOption { return func(s *SVG) { s.embed = true } }

// SVG is a [Canvas] that produces one SVG document per page.
type SVG struct {
	width, height float64
	fonts         *fonts.Registry
	title, desc   string
	embed         bool

	buf   bytes.Buffer
	open  bool
	pages [][]byte
}

// NewSVG returns a canvas for pages of the given size in points.
// A nil registry uses the built-in fonts.
func NewSVG(width, height float64, reg *fonts.Registry, opts ...SVGOption) *SVG {
	if reg == nil {
		reg = fonts.Builtin()
	}
	s := &SVG{width: width, height: height, fonts: reg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pages returns every finished page. A page still being drawn is closed first.
func (s *SVG) Pages() [][]byte {
	if s.open {
		s.ShowPage()
	}
	return s.pages
}

func (s *SVG) FillRect(r Rect, fill colorful.Color) {
	s.begin()
	fmt.Fprintf(&s.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		r.X, s.flip(r.Y+r.H), r.W, r.H, fill.Hex())
}

func (s *SVG) StrokeRect(r Rect, stroke colorful.Color, width float64) {
	s.begin()
	fmt.Fprintf(&s.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.X, s.flip(r.Y+r.H), r.W, r.H, stroke.Hex(), width)
}

func (s *SVG) Box(r Rect, fill, stroke colorful.Color, width float64) {
	s.begin()
	fmt.Fprintf(&s.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.X, s.flip(r.Y+r.H), r.W, r.H, fill.Hex(), stroke.Hex(), width)
}

func (s *SVG) Line(x1, y1, x2, y2 float64, stroke colorful.Color, width float64) {
	s.begin()
	fmt.Fprintf(&s.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x1, s.flip(y1), x2, s.flip(y2), stroke.Hex(), width)
}

func (s *SVG) Circle(cx, cy, r float64, fill, stroke colorful.Color) {
	s.begin()
	fmt.Fprintf(&s.buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s"/>`+"\n",
		cx, s.flip(cy), r, fill.Hex(), stroke.Hex())
}

func (s *SVG) Text(x, y float64, text string, style TextStyle) {
	if text == "" {
		return
	}
	s.begin()
	weight := ""
	if style.Font == fonts.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&s.buf, `  <text x="%.2f" y="%.2f" font-size="%.1f"%s fill="%s" text-anchor="%s">%s</text>`+"\n",
		x, s.flip(y), style.Size, weight, style.Color.Hex(), anchor(style.Align), escapeXML(text))
}

func (s *SVG) TextWidth(text string, font fonts.Style, size float64) float64 {
	return s.fonts.Width(text, font, size)
}

func (s *SVG) ShowPage() {
	s.begin()
	s.buf.WriteString("</svg>\n")
	page := make([]byte, s.buf.Len())
	copy(page, s.buf.Bytes())
	s.pages = append(s.pages, page)
	s.buf.Reset()
	s.open = false
}

func (s *SVG) begin() {
	if s.open {
		return
	}
	s.open = true
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.2fpt" height="%.2fpt">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.title != "" {
		fmt.Fprintf(&s.buf, "  <title>%s</title>\n", escapeXML(s.title))
	}
	if s.desc != "" {
		fmt.Fprintf(&s.buf, "  <desc>%s</desc>\n", escapeXML(s.desc))
	}
	s.renderStyle()
	fmt.Fprintf(&s.buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="#ffffff"/>`+"\n", s.width, s.height)
}

func (s *SVG) renderStyle() {
	s.buf.WriteString("  <style>\n")
	if s.embed {
		for _, f := range s.fonts.Fonts() {
			weight := "normal"
			if f.Style == fonts.Bold {
				weight = "bold"
			}
			fmt.Fprintf(&s.buf, "    @font-face { font-family: '%s'; font-weight: %s; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
				f.Family, weight, f.Base64())
		}
	}
	fmt.Fprintf(&s.buf, "    text { font-family: %s; }\n", fonts.FamilyStack)
	s.buf.WriteString("  </style>\n")
}

func (s *SVG) flip(y float64) float64 { return s.height - y }

func anchor(a Align) string {
	switch a {
	case AlignRight:
		return "end"
	case AlignCenter:
		return "middle"
	default:
		return "start"
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
