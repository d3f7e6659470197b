// Package shade derives per-task colours from a contractor's base colour.
//
// Shades of one contractor stay in the same colour family: saturation is
// kept, lightness is spread evenly from dark (first task) to light (last
// task) and the hue drifts a few degrees either side of the base hue so
// neighbouring tasks remain easy to tell apart.
package shade

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// LightnessMin is the HSL lightness of the first task's shade.
	LightnessMin = 0.35
	// LightnessMax is the HSL lightness of the last task's shade.
	LightnessMax = 0.80
	// HueSpread is the total hue drift across all shades, as a fraction of
	// the colour wheel (0.06 = ±10.8°).
	HueSpread = 0.06
)

// For returns the shade of base for the task at position index out of total.
// A contractor with a single task gets base unchanged. For is pure: equal
// arguments always yield the same colour.
func For(base colorful.Color, index, total int) colorful.Color {
	if total <= 1 {
		return base
	}
	index = min(max(index, 0), total-1)
	t := float64(index) / float64(total-1)

	h, s, _ := base.Hsl()
	l := LightnessMin + (LightnessMax-LightnessMin)*t
	h = math.Mod(h+(t-0.5)*HueSpread*360, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, l).Clamped()
}

// Palette returns the n shades of base in task order.
func Palette(base colorful.Color, n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = For(base, i, n)
	}
	return out
}
