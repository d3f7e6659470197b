package config

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sitegrid/pkg/compose"
	"github.com/matzehuels/sitegrid/pkg/errors"
)

// Settings resolves the configuration into composer settings.
func (c Config) Settings() (compose.Settings, error) {
	if err := c.Validate(); err != nil {
		return compose.Settings{}, err
	}
	s := compose.DefaultSettings()

	s.Geometry = c.Page.Geometry()
	s.Columns = c.Calendar.Columns
	cls, err := c.Calendar.Classifier()
	if err != nil {
		return compose.Settings{}, err
	}
	s.Classifier = cls

	for i, hex := range c.Colors.Months {
		if s.MonthColors[i], err = parseHex("colors.months", hex); err != nil {
			return compose.Settings{}, err
		}
	}
	if s.WeekendColor, err = parseHex("colors.weekend", c.Colors.Weekend); err != nil {
		return compose.Settings{}, err
	}
	if s.MilestoneColor, err = parseHex("colors.milestone", c.Colors.Milestone); err != nil {
		return compose.Settings{}, err
	}
	s.TradePalette = s.TradePalette[:0:0]
	for _, hex := range c.Colors.Trades {
		col, err := parseHex("colors.trades", hex)
		if err != nil {
			return compose.Settings{}, err
		}
		s.TradePalette = append(s.TradePalette, col)
	}

	s.ContractorColors = make(map[string]colorful.Color, len(c.Contractors.Colors))
	for name, hex := range c.Contractors.Colors {
		if s.ContractorColors[name], err = parseHex("contractors.colors."+name, hex); err != nil {
			return compose.Settings{}, err
		}
	}
	if s.UnknownContractor, err = parseHex("contractors.unknown", c.Contractors.Unknown); err != nil {
		return compose.Settings{}, err
	}
	s.Priority = append([]string(nil), c.Contractors.Priority...)

	s.PlanTitle = c.Text.PlanTitle
	s.ManpowerTitle = c.Text.ManpowerTitle
	s.Copyright = c.Text.Copyright
	if c.Text.HideCopyright {
		s.Copyright = ""
	}
	s.VersionLabel = c.Text.VersionLabel
	return s, nil
}

func parseHex(field, hex string) (colorful.Color, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: invalid colour %q", field, hex)
	}
	return col, nil
}
