package cli

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sitegrid/pkg/config"
	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/observability"
	"github.com/matzehuels/sitegrid/pkg/pipeline"
)

// layoutFlags are the flags shared by render and stats.
type layoutFlags struct {
	configPath   string  // render configuration file (yaml, json, toml)
	start        string  // first rendered day, YYYY-MM-DD
	end          string  // last rendered day, YYYY-MM-DD
	columns      int     // calendar columns
	margin       float64 // page margin in mm
	header       float64 // header band in mm
	versionLabel string  // replaces the generated version label
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "render configuration file (yaml, json or toml)")
	cmd.Flags().StringVar(&f.start, "start", "", "first day to draw (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "last day to draw (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.columns, "columns", 0, "days per calendar row")
	cmd.Flags().Float64Var(&f.margin, "margin", 0, "page margin in mm")
	cmd.Flags().Float64Var(&f.header, "header", 0, "header band height in mm")
	cmd.Flags().StringVar(&f.versionLabel, "version-label", "", "text shown after the date range in the subtitle")
}

// config loads the configuration file and applies flags the user set.
func (f *layoutFlags) config(changed func(string) bool) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if changed("columns") {
		cfg.Calendar.Columns = f.columns
	}
	if changed("margin") {
		cfg.Page.MarginMM = f.margin
	}
	if changed("header") {
		cfg.Page.HeaderMM = f.header
	}
	if changed("version-label") {
		cfg.Text.VersionLabel = f.versionLabel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// dates parses --start and --end.
func (f *layoutFlags) dates() (start, end *civil.Date, err error) {
	if start, err = parseDateFlag("start", f.start); err != nil {
		return nil, nil, err
	}
	if end, err = parseDateFlag("end", f.end); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func parseDateFlag(name, value string) (*civil.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(value)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRange, err, "--%s %q is not a YYYY-MM-DD date", name, value)
	}
	return &d, nil
}

// options builds pipeline options for input from the flags.
func (f *layoutFlags) options(cmd *cobra.Command, input string) (pipeline.Options, error) {
	cfg, err := f.config(cmd.Flags().Changed)
	if err != nil {
		return pipeline.Options{}, err
	}
	start, end, err := f.dates()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{Input: input, Config: cfg, Start: start, End: end}, nil
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	layoutFlags
	output      string  // output file or base path
	formats     string  // comma-separated formats
	scale       float64 // PNG scale factor
	embedFonts  bool    // inline font files into SVG output
	open        bool    // open the result in the system viewer
	metricsFile string  // Prometheus textfile to write after the run
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [schedule]",
		Short: "Render a schedule to PDF, SVG, PNG or JSON",
		Long: `Render a schedule file (json, toml or yaml) as two A3 landscape pages:
a calendar grid of contractor task bars and milestones, and a stacked
manpower histogram.

PDF and PNG output need rsvg-convert on the PATH. SVG and PNG produce one
file per page (plan-1.svg, plan-2.svg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.layoutFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path (default: input name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): pdf (default), svg, png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.embedFonts, "embed-fonts", false, "embed font files in SVG output")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the result in the system viewer")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cmd.Flags().Changed("output") {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}
	pipeOpts, err := opts.options(cmd, input)
	if err != nil {
		return err
	}
	pipeOpts.Formats = parseFormats(opts.formats)
	pipeOpts.Scale = opts.scale
	if opts.embedFonts {
		pipeOpts.Config.Fonts.Embed = true
	}
	if err := pipeline.ValidateFormats(pipeOpts.Formats); err != nil {
		return err
	}

	runner := c.newRunner()
	var metrics *observability.Metrics
	if opts.metricsFile != "" {
		metrics = observability.NewMetrics()
		runner.Hooks = metrics
		runner.Output = metrics
		defer func() {
			if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
				c.Logger.Warn("could not write metrics", "path", opts.metricsFile, "err", err)
			}
		}()
	}

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %s", input))
	spin.Start()
	result, err := runner.Execute(ctx, pipeOpts)
	spin.Stop()
	if err != nil {
		return err
	}

	paths, err := runner.Write(ctx, result, pipeline.BasePath(opts.output, input))
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Wrote %d files", len(paths)))
	printSuccess("Rendered %s (%s)", input, prog.elapsed())
	printStats(
		statPart{result.Stats.Days, "days"},
		statPart{result.Stats.Tasks, "tasks"},
		statPart{result.Stats.Milestones, "milestones"},
		statPart{result.Stats.Lanes, "lanes"},
	)
	if result.Stats.Gaps > 0 {
		printWarning("%d unusable records skipped (use -v for details)", result.Stats.Gaps)
	}
	for _, p := range paths {
		printFile(p)
	}

	if opts.open && len(paths) > 0 {
		runner.Open(ctx, preferredOpen(paths))
	}
	return nil
}

// preferredOpen picks the PDF when one was written, else the first file.
func preferredOpen(paths []string) string {
	for _, p := range paths {
		if strings.HasSuffix(p, ".pdf") {
			return p
		}
	}
	return paths[0]
}
