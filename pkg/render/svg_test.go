package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/sitegrid/pkg/fonts"
)

func TestSVGFlipsYAxis(t *testing.T) {
	c := NewSVG(200, 100, nil)
	c.FillRect(Rect{X: 10, Y: 20, W: 30, H: 40}, Red)
	c.Line(0, 0, 200, 100, Black, 0.7)
	c.Circle(50, 10, 2, Red, Black)
	pages := c.Pages()

	if len(pages) != 1 {
		t.Fatalf("len(Pages) = %d, want 1", len(pages))
	}
	svg := string(pages[0])

	for _, want := range []string{
		`<rect x="10.00" y="40.00" width="30.00" height="40.00" fill="#ff0000"/>`,
		`<line x1="0.00" y1="100.00" x2="200.00" y2="0.00" stroke="#000000" stroke-width="0.70"/>`,
		`<circle cx="50.00" cy="90.00" r="2.00" fill="#ff0000" stroke="#000000"/>`,
		`viewBox="0 0 200.00 100.00"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("page missing %s", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("page not closed")
	}
}

func TestSVGText(t *testing.T) {
	tests := []struct {
		name  string
		style TextStyle
		want  string
	}{
		{"left", TextStyle{Size: 9, Color: White}, `text-anchor="start"`},
		{"right", TextStyle{Size: 8, Align: AlignRight}, `text-anchor="end"`},
		{"center bold", TextStyle{Font: fonts.Bold, Size: 18, Align: AlignCenter}, `font-weight="bold" fill="#000000" text-anchor="middle"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSVG(100, 100, nil)
			c.Text(5, 10, "A & B <c>", tt.style)
			svg := string(c.Pages()[0])
			if !strings.Contains(svg, tt.want) {
				t.Errorf("text missing %s in\n%s", tt.want, svg)
			}
			if !strings.Contains(svg, ">A &amp; B &lt;c&gt;</text>") {
				t.Error("text not escaped")
			}
			if !strings.Contains(svg, `y="90.00"`) {
				t.Error("baseline not flipped")
			}
		})
	}
}

func TestSVGSkipsEmptyText(t *testing.T) {
	c := NewSVG(100, 100, nil)
	c.Text(0, 0, "", TextStyle{Size: 10})
	c.ShowPage()
	if strings.Contains(string(c.Pages()[0]), "<text") {
		t.Error("empty text produced an element")
	}
}

func TestSVGPages(t *testing.T) {
	c := NewSVG(100, 100, nil, WithTitle("Plan"), WithDescription("two pages"))
	c.FillRect(Rect{W: 1, H: 1}, Black)
	c.ShowPage()
	c.FillRect(Rect{W: 2, H: 2}, Black)
	c.ShowPage()

	pages := c.Pages()
	if len(pages) != 2 {
		t.Fatalf("len(Pages) = %d, want 2", len(pages))
	}
	for i, p := range pages {
		s := string(p)
		if strings.Count(s, "<svg ") != 1 || strings.Count(s, "</svg>") != 1 {
			t.Errorf("page %d is not a single document", i)
		}
		if !strings.Contains(s, "<title>Plan</title>") || !strings.Contains(s, "<desc>two pages</desc>") {
			t.Errorf("page %d missing metadata", i)
		}
	}
	if !strings.Contains(string(pages[1]), `width="2.00"`) {
		t.Error("second page lost its content")
	}
	if len(c.Pages()) != 2 {
		t.Error("Pages() added a page when nothing was pending")
	}
}

func TestSVGBlankPage(t *testing.T) {
	c := NewSVG(100, 100, nil)
	c.ShowPage()
	if n := len(c.Pages()); n != 1 {
		t.Errorf("blank ShowPage produced %d pages, want 1", n)
	}
}

func TestSVGEmbeddedFonts(t *testing.T) {
	reg := fonts.Builtin()

	plain := string(blankPage(NewSVG(10, 10, reg)))
	if strings.Contains(plain, "@font-face") {
		t.Error("fonts embedded without WithEmbeddedFonts")
	}

	embedded := string(blankPage(NewSVG(10, 10, reg, WithEmbeddedFonts())))
	if strings.Count(embedded, "@font-face") != 2 {
		t.Error("want one @font-face per registered face")
	}
	if !strings.Contains(embedded, reg.Face(fonts.Regular).Base64()[:32]) {
		t.Error("regular face data missing")
	}
}

func TestSVGTextWidthUsesRegistry(t *testing.T) {
	reg := fonts.Builtin()
	c := NewSVG(10, 10, reg)
	if got, want := c.TextWidth("Ocubo", fonts.Bold, 8), reg.Width("Ocubo", fonts.Bold, 8); got != want {
		t.Errorf("TextWidth = %v, want %v", got, want)
	}
}

func blankPage(s *SVG) []byte {
	s.ShowPage()
	return s.Pages()[0]
}
