// Package pipeline provides the render pipeline for sitegrid.
//
// This package implements the complete load → layout → render pipeline used
// by the CLI. Centralizing it keeps range resolution, configuration and
// output conversion identical for every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a schedule file (JSON, TOML or YAML), counting data gaps
//  2. Layout: Resolve the date range and compute both pages
//  3. Render: Draw the pages and convert them to the requested formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "schedule.yaml",
//	    Formats: []string{"pdf", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := runner.Write(ctx, result, "out/plan")
package pipeline

import (
	"fmt"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/sitegrid/pkg/compose"
	"github.com/matzehuels/sitegrid/pkg/config"
	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// DefaultScale is the PNG raster scale factor.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one render.
type Options struct {
	// Load options
	Input    string          // schedule file; ignored when Schedule is set
	Schedule *schedule.Input // pre-loaded schedule

	// Layout options
	Start  *civil.Date    // overrides the schedule's start date
	End    *civil.Date    // overrides the schedule's end date
	Config *config.Config // nil uses config.Default()

	// Render options
	Formats []string
	Scale   float64

	// Now stamps the default version label. Nil means time.Now.
	Now func() time.Time

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	Input  *schedule.Input
	Layout *compose.Layout

	// Artifacts contains rendered outputs keyed by format, with a page
	// suffix for per-page formats ("svg-1", "png-2").
	Artifacts map[string][]byte

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Milestones int
	Tasks      int
	Gaps       int
	Days       int
	Lanes      int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Keys returns the artifact keys in a stable order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.Artifacts))
	for k := range r.Artifacts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: pdf, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" && o.Schedule == nil {
		return errors.New(errors.ErrCodeInvalidInput, "input file or schedule is required")
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %g", o.Scale)
	}
	if o.Start != nil && !o.Start.IsValid() {
		return errors.New(errors.ErrCodeInvalidRange, "invalid start date %s", o.Start)
	}
	if o.End != nil && !o.End.IsValid() {
		return errors.New(errors.ErrCodeInvalidRange, "invalid end date %s", o.End)
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPDF}
	}
	o.Formats = dedupe(o.Formats)
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Config == nil {
		o.Config = config.Default()
	}
}

// Wants reports whether format was requested.
func (o *Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// pageKey names the artifact for one page of a per-page format.
func pageKey(format string, page int) string {
	return fmt.Sprintf("%s-%d", format, page)
}
