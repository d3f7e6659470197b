package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/sitegrid/pkg/calendar"
	"github.com/matzehuels/sitegrid/pkg/compose"
	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/render"
)

// PageConfig is the page geometry. Width and height are points; margin and
// header are millimetres.
type PageConfig struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	MarginMM float64 `json:"margin_mm"`
	HeaderMM float64 `json:"header_mm"`
}

// SetDefaults applies A3 landscape with a 10mm margin and 18mm header.
func (c *PageConfig) SetDefaults() {
	if c.Width == 0 {
		c.Width = compose.A3Width
	}
	if c.Height == 0 {
		c.Height = compose.A3Height
	}
	if c.MarginMM == 0 {
		c.MarginMM = 10
	}
	if c.HeaderMM == 0 {
		c.HeaderMM = 18
	}
}

// Geometry converts the page to points.
func (c PageConfig) Geometry() calendar.Geometry {
	return calendar.Geometry{
		PageWidth:    c.Width,
		PageHeight:   c.Height,
		Margin:       c.MarginMM * render.MM,
		HeaderHeight: c.HeaderMM * render.MM,
	}
}

// Validate rejects negative sizes and pages with no drawing area left.
func (c PageConfig) Validate() error {
	if c.Width < 0 || c.Height < 0 || c.MarginMM < 0 || c.HeaderMM < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "page sizes must not be negative")
	}
	return c.Geometry().Validate()
}

// CalendarConfig shapes the day grid.
type CalendarConfig struct {
	Columns int `json:"columns"`
	// Weekend names the two weekdays highlighted as weekend, e.g. "friday".
	Weekend []string `json:"weekend"`
}

// SetDefaults applies seven columns and a Friday/Saturday weekend.
func (c *CalendarConfig) SetDefaults() {
	if c.Columns == 0 {
		c.Columns = 7
	}
	if len(c.Weekend) == 0 {
		c.Weekend = []string{"friday", "saturday"}
	}
}

// Validate checks the column count and weekday names.
func (c CalendarConfig) Validate() error {
	if err := errors.ValidateColumns(c.Columns); err != nil {
		return err
	}
	_, err := c.Classifier()
	return err
}

// Classifier returns the weekend classifier for the configured pair.
func (c CalendarConfig) Classifier() (calendar.Classifier, error) {
	if len(c.Weekend) != 2 {
		return calendar.Classifier{}, errors.New(errors.ErrCodeInvalidConfig,
			"calendar.weekend: want exactly two weekdays, got %d", len(c.Weekend))
	}
	var cls calendar.Classifier
	for i, name := range c.Weekend {
		wd, err := ParseWeekday(name)
		if err != nil {
			return calendar.Classifier{}, err
		}
		cls.Weekend[i] = wd
	}
	return cls, nil
}

// ParseWeekday accepts full or three-letter English weekday names in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown weekday %q", s)
}

// ColorConfig holds the background and chart palettes as hex literals.
type ColorConfig struct {
	// Months has one colour per month, January first.
	Months    []string `json:"months"`
	Weekend   string   `json:"weekend"`
	Milestone string   `json:"milestone"`
	Trades    []string `json:"trades"`
}

// SetDefaults copies the default palettes into unset fields.
func (c *ColorConfig) SetDefaults() {
	d := compose.DefaultSettings()
	if len(c.Months) == 0 {
		for _, m := range d.MonthColors {
			c.Months = append(c.Months, m.Hex())
		}
	}
	if c.Weekend == "" {
		c.Weekend = d.WeekendColor.Hex()
	}
	if c.Milestone == "" {
		c.Milestone = d.MilestoneColor.Hex()
	}
	if len(c.Trades) == 0 {
		for _, t := range d.TradePalette {
			c.Trades = append(c.Trades, t.Hex())
		}
	}
}

// Validate checks counts and hex syntax.
func (c ColorConfig) Validate() error {
	if len(c.Months) != 12 {
		return errors.New(errors.ErrCodeInvalidConfig, "colors.months: want 12 colours, got %d", len(c.Months))
	}
	for i, m := range c.Months {
		if err := errors.ValidateHexColor(fmt.Sprintf("colors.months[%d]", i), m); err != nil {
			return err
		}
	}
	if err := errors.ValidateHexColor("colors.weekend", c.Weekend); err != nil {
		return err
	}
	if err := errors.ValidateHexColor("colors.milestone", c.Milestone); err != nil {
		return err
	}
	for i, t := range c.Trades {
		if err := errors.ValidateHexColor(fmt.Sprintf("colors.trades[%d]", i), t); err != nil {
			return err
		}
	}
	return nil
}

// ContractorConfig sets contractor colours and stacking priority.
type ContractorConfig struct {
	Colors   map[string]string `json:"colors"`
	Priority []string          `json:"priority"`
	// Unknown is the colour of contractors missing from Colors.
	Unknown string `json:"unknown"`
}

// SetDefaults applies the default contractor table when none is configured.
func (c *ContractorConfig) SetDefaults() {
	d := compose.DefaultSettings()
	if c.Colors == nil {
		c.Colors = make(map[string]string, len(d.ContractorColors))
		for name, col := range d.ContractorColors {
			c.Colors[name] = col.Hex()
		}
	}
	if c.Priority == nil {
		c.Priority = append([]string(nil), d.Priority...)
	}
	if c.Unknown == "" {
		c.Unknown = d.UnknownContractor.Hex()
	}
}

// Validate checks every colour literal.
func (c ContractorConfig) Validate() error {
	for name, col := range c.Colors {
		if err := errors.ValidateHexColor("contractors.colors."+name, col); err != nil {
			return err
		}
	}
	return errors.ValidateHexColor("contractors.unknown", c.Unknown)
}

// TextConfig holds the fixed strings printed on the document.
type TextConfig struct {
	PlanTitle     string `json:"plan_title"`
	ManpowerTitle string `json:"manpower_title"`
	Copyright     string `json:"copyright"`
	VersionLabel  string `json:"version_label"`
	// HideCopyright leaves the footer off both pages.
	HideCopyright bool `json:"hide_copyright"`

	DocumentTitle string `json:"document_title"`
	Author        string `json:"author"`
	Subject       string `json:"subject"`
}

// SetDefaults applies the default titles.
func (c *TextConfig) SetDefaults() {
	d := compose.DefaultSettings()
	if c.PlanTitle == "" {
		c.PlanTitle = d.PlanTitle
	}
	if c.ManpowerTitle == "" {
		c.ManpowerTitle = d.ManpowerTitle
	}
	if c.Copyright == "" {
		c.Copyright = d.Copyright
	}
	if c.DocumentTitle == "" {
		c.DocumentTitle = "Works Planner"
	}
	if c.Subject == "" {
		c.Subject = "Construction & FF Planning Grid"
	}
}

// FontConfig locates the Poppins faces.
type FontConfig struct {
	Dir string `json:"dir"`
	// Embed inlines the faces into SVG output.
	Embed bool `json:"embed"`
}

// SetDefaults looks for fonts in the working directory.
func (c *FontConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
}
