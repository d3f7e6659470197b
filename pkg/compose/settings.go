package compose

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sitegrid/pkg/calendar"
	"github.com/matzehuels/sitegrid/pkg/render"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// A3 landscape in points.
const (
	A3Width  = 1190.55
	A3Height = 841.89
)

// Settings is everything about a document that is not schedule data.
// Colour tables are plain values; nothing is looked up from global state.
type Settings struct {
	Geometry   calendar.Geometry
	Columns    int
	Classifier calendar.Classifier

	MonthColors  [12]colorful.Color
	WeekendColor colorful.Color

	ContractorColors  map[string]colorful.Color
	UnknownContractor colorful.Color
	// Priority contractors are stacked first, in this order.
	Priority []string

	MilestoneColor colorful.Color
	TradePalette   []colorful.Color

	PlanTitle     string
	ManpowerTitle string
	Copyright     string

	// VersionLabel replaces the generated timestamp in subtitles when set.
	VersionLabel string
	// Now stamps generated version labels. Defaults to time.Now.
	Now func() time.Time
}

// DefaultSettings returns an A3 landscape, seven-column layout with a
// Friday/Saturday weekend.
func DefaultSettings() Settings {
	return Settings{
		Geometry: calendar.Geometry{
			PageWidth:    A3Width,
			PageHeight:   A3Height,
			Margin:       10 * render.MM,
			HeaderHeight: 18 * render.MM,
		},
		Columns:    7,
		Classifier: calendar.DefaultClassifier(),
		MonthColors: [12]colorful.Color{
			mustHex("#CCE0FF"), mustHex("#CFFFE0"), mustHex("#FFE4C4"), mustHex("#FFD6E8"),
			mustHex("#E2D6FF"), mustHex("#CFF7FF"), mustHex("#E0F2B2"), mustHex("#FFD1C7"),
			mustHex("#D2D8FF"), mustHex("#D4FFE2"), mustHex("#FFD9B3"), mustHex("#CDEBFF"),
		},
		WeekendColor: mustHex("#DDDDDD"),
		ContractorColors: map[string]colorful.Color{
			"Dynamic Motion": mustHex("#0077B6"),
			"MediaPro":       mustHex("#E63946"),
			"Ocubo":          mustHex("#2A9D8F"),
		},
		UnknownContractor: render.Black,
		Priority:          []string{"Dynamic Motion", "MediaPro", "Ocubo"},
		MilestoneColor:    render.Red,
		TradePalette: []colorful.Color{
			mustHex("#FF7A18"), mustHex("#00B894"), mustHex("#6C5CE7"), mustHex("#0984E3"),
			mustHex("#D63031"), mustHex("#E84393"), mustHex("#2ECC71"), mustHex("#F1C40F"),
		},
		PlanTitle:     "Construction/FF Plan",
		ManpowerTitle: "Manpower Overview",
		Copyright:     "Generated with sitegrid. All rights reserved.",
		Now:           time.Now,
	}
}

// ContractorColor returns the base colour for a contractor.
func (s Settings) ContractorColor(name string) colorful.Color {
	if c, ok := s.ContractorColors[name]; ok {
		return c
	}
	return s.UnknownContractor
}

// MonthColor returns the background for a month.
func (s Settings) MonthColor(m time.Month) colorful.Color {
	if m < time.January || m > time.December {
		return render.White
	}
	return s.MonthColors[m-1]
}

// TradeColor returns the palette colour for the i-th trade, cycling.
func (s Settings) TradeColor(i int) colorful.Color {
	if len(s.TradePalette) == 0 {
		return render.Black
	}
	return s.TradePalette[i%len(s.TradePalette)]
}

// Background returns the fill for a classified cell.
func (s Settings) Background(b calendar.Background) colorful.Color {
	if b.Class == calendar.ClassWeekend {
		return s.WeekendColor
	}
	return s.MonthColor(b.Month)
}

// Subtitle returns the date range followed by the version label.
func (s Settings) Subtitle(rng schedule.DateRange) string {
	return fmt.Sprintf("%s – %s --- %s", formatDate(rng.Start, "02 Jan 2006"), formatDate(rng.End, "02 Jan 2006"), s.version())
}

func (s Settings) version() string {
	if s.VersionLabel != "" {
		return s.VersionLabel
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now()
	return fmt.Sprintf("Version Generated at %s on %s", t.Format("15:04"), t.Format("02 Jan 2006"))
}

func formatDate(d civil.Date, layout string) string {
	return d.In(time.UTC).Format(layout)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
