package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sitegrid/pkg/buildinfo"
	"github.com/matzehuels/sitegrid/pkg/compose"
	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/fonts"
	"github.com/matzehuels/sitegrid/pkg/io"
	"github.com/matzehuels/sitegrid/pkg/observability"
	"github.com/matzehuels/sitegrid/pkg/render"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for its logger, hooks and font registry.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
	Hooks  observability.PipelineHooks
	Output observability.OutputHooks

	// Fonts overrides the registry loaded from the configured font directory.
	Fonts *fonts.Registry
}

// NewRunner creates a runner using the globally registered hooks.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		Hooks:  observability.Pipeline(),
		Output: observability.Output(),
	}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	opts.Logger = r.logger(opts).With("run", runID)

	result := &Result{RunID: runID}

	// Stage 1: Load
	start := time.Now()
	in, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Input = in
	result.Stats.LoadTime = time.Since(start)
	result.Stats.Milestones = len(in.Milestones)
	result.Stats.Tasks = len(in.Tasks)
	result.Stats.Gaps = in.Gaps.Total()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	start = time.Now()
	l, err := r.Layout(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(start)
	result.Stats.Days = l.Range.Days()
	result.Stats.Lanes = l.Plan.TotalLanes()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	start = time.Now()
	artifacts, err := r.Render(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)

	return result, nil
}

// Load reads the schedule named by opts, or returns opts.Schedule.
func (r *Runner) Load(ctx context.Context, opts Options) (*schedule.Input, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	source := opts.Input
	if opts.Schedule != nil {
		source = "memory"
	}
	r.hooks().OnLoadStart(ctx, source)
	start := time.Now()

	in := opts.Schedule
	var err error
	if in == nil {
		in, err = io.ImportSchedule(opts.Input)
	}
	records, gaps := 0, 0
	if in != nil {
		records = len(in.Milestones) + len(in.Tasks)
		gaps = in.Gaps.Total()
	}
	r.hooks().OnLoadComplete(ctx, source, records, gaps, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded schedule",
		"source", source,
		"milestones", len(in.Milestones),
		"tasks", len(in.Tasks),
		"duration", time.Since(start))
	if gaps > 0 {
		logger.Debug("skipped unusable records",
			"milestones", in.Gaps.Milestones,
			"tasks", in.Gaps.Tasks,
			"values", in.Gaps.Values)
	}
	return in, nil
}

// Layout resolves the range and settings and computes both pages.
func (r *Runner) Layout(ctx context.Context, in *schedule.Input, opts Options) (*compose.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	rng, err := ResolveRange(in, opts.Start, opts.End)
	if err != nil {
		return nil, err
	}
	settings, err := opts.Config.Settings()
	if err != nil {
		return nil, err
	}
	if opts.Now != nil {
		settings.Now = opts.Now
	}

	r.hooks().OnLayoutStart(ctx, rng.Days(), len(in.Tasks))
	start := time.Now()
	l, err := compose.Build(compose.Document{
		Range:      rng,
		Milestones: in.Milestones,
		Tasks:      in.Tasks,
		Manpower:   in.Manpower,
	}, settings)
	lanes := 0
	if l != nil {
		lanes = l.Plan.TotalLanes()
	}
	r.hooks().OnLayoutComplete(ctx, lanes, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	logger.Info("computed layout",
		"start", rng.Start,
		"end", rng.End,
		"days", rng.Days(),
		"lanes", lanes,
		"duration", time.Since(start))
	if l.Dropped > 0 || l.Hidden.Tasks > 0 || l.Hidden.Milestones > 0 {
		logger.Debug("records outside the page",
			"dropped_tasks", l.Dropped,
			"hidden_tasks", l.Hidden.Tasks,
			"hidden_milestones", l.Hidden.Milestones)
	}
	return l, nil
}

// Render draws l and produces every requested format.
func (r *Runner) Render(ctx context.Context, l *compose.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	r.hooks().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err := r.render(ctx, l, opts)
	r.hooks().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", time.Since(start))
	return artifacts, nil
}

func (r *Runner) render(ctx context.Context, l *compose.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	var pages [][]byte
	if opts.Wants(FormatPDF) || opts.Wants(FormatSVG) || opts.Wants(FormatPNG) {
		pages = r.draw(l, opts)
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatPDF:
			data, err := render.ToPDF(ctx, pages)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatSVG:
			for i, page := range pages {
				artifacts[pageKey(format, i+1)] = page
			}
		case FormatPNG:
			for i, page := range pages {
				data, err := render.ToPNG(ctx, page, opts.Scale)
				if err != nil {
					return nil, err
				}
				artifacts[pageKey(format, i+1)] = data
			}
		case FormatJSON:
			var buf bytes.Buffer
			if err := io.WriteLayout(l, &buf); err != nil {
				return nil, err
			}
			artifacts[format] = buf.Bytes()
		}
	}
	return artifacts, nil
}

func (r *Runner) draw(l *compose.Layout, opts Options) [][]byte {
	reg := r.fontRegistry(opts)
	text := opts.Config.Text
	desc := text.Subject
	if text.Author != "" {
		desc += ", " + text.Author
	}
	desc += " (" + buildinfo.Generator() + ")"
	svgOpts := []render.SVGOption{
		render.WithTitle(text.DocumentTitle),
		render.WithDescription(desc),
	}
	if opts.Config.Fonts.Embed {
		svgOpts = append(svgOpts, render.WithEmbeddedFonts())
	}
	g := l.Settings.Geometry
	canvas := render.NewSVG(g.PageWidth, g.PageHeight, reg, svgOpts...)
	compose.Draw(canvas, l)
	return canvas.Pages()
}

func (r *Runner) fontRegistry(opts Options) *fonts.Registry {
	if r.Fonts != nil {
		return r.Fonts
	}
	reg := fonts.Load(opts.Config.Fonts.Dir)
	if reg.Fallback() {
		r.logger(opts).Debug("using built-in fonts", "dir", opts.Config.Fonts.Dir)
	}
	return reg
}

// Write stores every artifact of res next to base and returns the paths in
// write order. Any failure is an OUTPUT_WRITE error.
func (r *Runner) Write(ctx context.Context, res *Result, base string) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "create %s", dir)
		}
	}
	var paths []string
	for _, key := range res.Keys() {
		data := res.Artifacts[key]
		path := ArtifactPath(base, key)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeOutputWrite, err, "write %s", path)
		}
		format, _, _ := strings.Cut(key, "-")
		r.output().OnArtifact(ctx, format, len(data))
		paths = append(paths, path)
	}
	return paths, nil
}

// ArtifactPath maps an artifact key to a file next to base:
// "pdf" becomes base.pdf and "svg-2" becomes base-2.svg.
func ArtifactPath(base, key string) string {
	format, page, ok := strings.Cut(key, "-")
	if !ok {
		return base + "." + format
	}
	return base + "-" + page + "." + format
}

// BasePath derives the output base from the -o flag and the input path.
// A known format extension on output is stripped.
func BasePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// ResolveRange picks the rendered range: explicit dates win, then the range
// stored in the schedule, then the span of its dated records.
func ResolveRange(in *schedule.Input, start, end *civil.Date) (schedule.DateRange, error) {
	var base schedule.DateRange
	haveBase := false
	if in != nil && in.Range != nil {
		base, haveBase = *in.Range, true
	} else if in != nil {
		base, haveBase = in.Span()
	}

	switch {
	case start != nil && end != nil:
		base = schedule.DateRange{Start: *start, End: *end}
	case start != nil:
		if !haveBase {
			return schedule.DateRange{}, errors.New(errors.ErrCodeInvalidRange,
				"no end date: pass an end date or add dated records")
		}
		base.Start = *start
	case end != nil:
		if !haveBase {
			return schedule.DateRange{}, errors.New(errors.ErrCodeInvalidRange,
				"no start date: pass a start date or add dated records")
		}
		base.End = *end
	case !haveBase:
		return schedule.DateRange{}, errors.New(errors.ErrCodeInvalidRange,
			"no date range: the schedule has no range and no dated records")
	}
	return schedule.NewDateRange(base.Start, base.End)
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

func (r *Runner) hooks() observability.PipelineHooks {
	if r.Hooks == nil {
		return observability.NoopPipelineHooks{}
	}
	return r.Hooks
}

func (r *Runner) output() observability.OutputHooks {
	if r.Output == nil {
		return observability.NoopOutputHooks{}
	}
	return r.Output
}

// Open hands path to the system viewer. Failures are logged and ignored.
func (r *Runner) Open(ctx context.Context, path string) {
	err := render.Open(path)
	r.output().OnOpen(ctx, path, err)
	if err != nil {
		r.logger(Options{}).Warn("could not open output", "path", path, "err", err)
	}
}
