package cli

import (
	"testing"

	"github.com/matzehuels/sitegrid/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"pdf"}},
		{"svg", []string{"svg"}},
		{"svg, png,,json", []string{"svg", "png", "json"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("start", "2025-12-04")
	if err != nil || d == nil || d.String() != "2025-12-04" {
		t.Errorf("parseDateFlag = %v, %v", d, err)
	}
	if d, err := parseDateFlag("start", ""); d != nil || err != nil {
		t.Errorf("empty flag = %v, %v", d, err)
	}
	if _, err := parseDateFlag("end", "tomorrow"); !errors.Is(err, errors.ErrCodeInvalidRange) {
		t.Errorf("bad date: got %v, want INVALID_RANGE", err)
	}
}

func TestLayoutFlagsOverrideOnlyChanged(t *testing.T) {
	f := layoutFlags{columns: 5, margin: 12}
	changed := func(name string) bool { return name == "columns" }

	cfg, err := f.config(changed)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Calendar.Columns != 5 {
		t.Errorf("columns = %d, want 5", cfg.Calendar.Columns)
	}
	if cfg.Page.MarginMM == 12 {
		t.Error("unchanged margin flag should not override the config")
	}
}

func TestLayoutFlagsRejectBadGeometry(t *testing.T) {
	f := layoutFlags{margin: 500}
	_, err := f.config(func(name string) bool { return name == "margin" })
	if !errors.IsConfiguration(err) {
		t.Errorf("got %v, want a configuration error", err)
	}
}

func TestPreferredOpen(t *testing.T) {
	if got := preferredOpen([]string{"a.json", "a.pdf"}); got != "a.pdf" {
		t.Errorf("preferredOpen = %q", got)
	}
	if got := preferredOpen([]string{"a-1.svg", "a-2.svg"}); got != "a-1.svg" {
		t.Errorf("preferredOpen = %q", got)
	}
}
