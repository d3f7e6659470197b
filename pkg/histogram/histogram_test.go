package histogram

import (
	"math"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/manpower"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

const eps = 1e-9

func dec(d int) civil.Date { return civil.Date{Year: 2025, Month: time.December, Day: d} }

func summary(t *testing.T, add func(m *schedule.Manpower)) manpower.Summary {
	t.Helper()
	m := schedule.NewManpower()
	add(m)
	return manpower.Aggregate(m, schedule.DateRange{Start: dec(4), End: dec(7)})
}

var chart = Chart{Left: 100, Bottom: 50, Width: 400, Height: 200}

func TestLayoutStacking(t *testing.T) {
	s := summary(t, func(m *schedule.Manpower) {
		m.Add("Foreman", dec(4), 1)
		m.Add("Welding", dec(4), 3)
		m.Add("Welding", dec(5), 2)
	})
	h := Layout(s, chart)

	if h.Scale != 4 {
		t.Fatalf("Scale = %v, want 4", h.Scale)
	}
	if len(h.Bars) != 4 {
		t.Fatalf("len(Bars) = %d, want 4", len(h.Bars))
	}

	first := h.Bars[0]
	if len(first.Segments) != 2 {
		t.Fatalf("day 0 segments = %d, want 2", len(first.Segments))
	}
	foreman, welding := first.Segments[0], first.Segments[1]
	if foreman.Trade != 0 || welding.Trade != 1 {
		t.Errorf("segment trades = %d, %d, want 0, 1", foreman.Trade, welding.Trade)
	}
	if foreman.Y != 50 || math.Abs(foreman.Height-50) > eps {
		t.Errorf("foreman segment = %+v, want Y 50 height 50", foreman)
	}
	if math.Abs(welding.Y-100) > eps || math.Abs(welding.Height-150) > eps {
		t.Errorf("welding segment = %+v, want Y 100 height 150", welding)
	}
	if math.Abs(first.Top()-250) > eps {
		t.Errorf("peak bar top = %v, want chart top 250", first.Top())
	}

	second := h.Bars[1]
	if len(second.Segments) != 1 || second.Segments[0].Trade != 1 {
		t.Fatalf("day 1 segments = %+v, want one welding segment", second.Segments)
	}
	if second.Segments[0].Y != 50 {
		t.Errorf("lone segment starts at %v, want chart bottom 50", second.Segments[0].Y)
	}

	if len(h.Bars[2].Segments) != 0 || h.Bars[2].Top() != 0 {
		t.Errorf("empty day has segments %+v", h.Bars[2].Segments)
	}
}

func TestLayoutHorizontal(t *testing.T) {
	s := summary(t, func(m *schedule.Manpower) { m.Add("A", dec(4), 1) })
	h := Layout(s, chart)

	if h.Slot != 100 {
		t.Fatalf("Slot = %v, want 100", h.Slot)
	}
	for i, b := range h.Bars {
		if math.Abs(b.Width-70) > eps {
			t.Errorf("bar %d width = %v, want 70", i, b.Width)
		}
		wantX := 100 + float64(i)*100 + 15
		if math.Abs(b.X-wantX) > eps {
			t.Errorf("bar %d X = %v, want %v", i, b.X, wantX)
		}
		if math.Abs(b.Center-(b.X+b.Width/2)) > eps {
			t.Errorf("bar %d not centred in slot: X %v width %v center %v", i, b.X, b.Width, b.Center)
		}
		if b.Date != dec(4+i) {
			t.Errorf("bar %d date = %v", i, b.Date)
		}
	}
}

func TestLayoutCustomBarFraction(t *testing.T) {
	s := summary(t, func(m *schedule.Manpower) { m.Add("A", dec(4), 1) })
	c := chart
	c.BarFraction = 0.5
	h := Layout(s, c)
	if math.Abs(h.Bars[0].Width-50) > eps {
		t.Errorf("bar width = %v, want 50", h.Bars[0].Width)
	}
}

func TestLayoutNoManpower(t *testing.T) {
	s := summary(t, func(*schedule.Manpower) {})
	h := Layout(s, chart)

	if h.Scale != 1 {
		t.Errorf("Scale = %v, want 1", h.Scale)
	}
	for i, b := range h.Bars {
		if len(b.Segments) != 0 {
			t.Errorf("bar %d has segments without manpower", i)
		}
	}
}

func TestLayoutTicks(t *testing.T) {
	s := summary(t, func(m *schedule.Manpower) { m.Add("A", dec(5), 8) })
	h := Layout(s, chart)

	want := []Tick{{0, 50}, {4, 150}, {8, 250}}
	if len(h.Ticks) != len(want) {
		t.Fatalf("len(Ticks) = %d, want %d", len(h.Ticks), len(want))
	}
	for i, w := range want {
		if h.Ticks[i] != w {
			t.Errorf("Ticks[%d] = %+v, want %+v", i, h.Ticks[i], w)
		}
	}
}

func TestLayoutStackSumsToTotal(t *testing.T) {
	s := summary(t, func(m *schedule.Manpower) {
		m.Add("A", dec(4), 2)
		m.Add("B", dec(4), 5)
		m.Add("C", dec(4), 1.5)
		m.Add("A", dec(6), 3)
		m.Add("C", dec(6), 0.5)
	})
	h := Layout(s, chart)
	for _, b := range h.Bars {
		if len(b.Segments) == 0 {
			continue
		}
		want := chart.Bottom + b.Total/h.Scale*chart.Height
		if math.Abs(b.Top()-want) > 1e-6 {
			t.Errorf("day %d top = %v, want %v", b.Day, b.Top(), want)
		}
		for i := 1; i < len(b.Segments); i++ {
			prev := b.Segments[i-1]
			if math.Abs(b.Segments[i].Y-(prev.Y+prev.Height)) > 1e-9 {
				t.Errorf("day %d segment %d not stacked on previous", b.Day, i)
			}
		}
	}
}
