package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/sitegrid/pkg/compose"
	"github.com/matzehuels/sitegrid/pkg/io"
	"github.com/matzehuels/sitegrid/pkg/lanes"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// statsOpts holds the command-line flags for the stats command.
type statsOpts struct {
	layoutFlags
	clean  string // write the schedule without unusable records to this path
	layout string // write the computed layout as JSON to this path
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var opts statsOpts

	cmd := &cobra.Command{
		Use:   "stats [schedule]",
		Short: "Print contractor lanes and the manpower summary of a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd, args[0], &opts)
		},
	}

	opts.layoutFlags.register(cmd)
	cmd.Flags().StringVar(&opts.clean, "clean", "", "write the schedule without unusable records to this JSON file")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "write the computed layout to this JSON file")

	return cmd
}

func (c *CLI) runStats(cmd *cobra.Command, input string, opts *statsOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pipeOpts, err := opts.options(cmd, input)
	if err != nil {
		return err
	}
	pipeOpts.Formats = []string{"json"}

	runner := c.newRunner()
	in, err := runner.Load(ctx, pipeOpts)
	if err != nil {
		return err
	}
	l, err := runner.Layout(ctx, in, pipeOpts)
	if err != nil {
		return err
	}

	printInfo("%s", StyleTitle.Render(input))
	printKeyValue("Range", l.Subtitle)
	printKeyValue("Days", fmt.Sprint(l.Range.Days()))
	printKeyValue("Lanes", fmt.Sprint(l.Plan.TotalLanes()))
	printNewline()

	if len(l.Plan.Bands) > 0 {
		printTable([]string{"Contractor", "Tasks", "Lanes", "Slots"}, contractorRows(l))
	} else {
		printDetail("no tasks")
	}
	printNewline()

	for _, line := range compose.MetricLines(l.Summary) {
		printDetail("%s", line)
	}
	if len(l.Summary.Trades) > 0 {
		printTable([]string{"Trade", "Man-days", "Peak"}, tradeRows(l))
	}

	printGaps(in.Gaps, l)

	if opts.clean != "" {
		if err := io.ExportSchedule(in, opts.clean); err != nil {
			return err
		}
		printSuccess("Wrote clean schedule")
		printFile(opts.clean)
	}
	if opts.layout != "" {
		if err := io.ExportLayout(l, opts.layout); err != nil {
			return err
		}
		printSuccess("Wrote layout")
		printFile(opts.layout)
	}
	return nil
}

// contractorRows lists each band in stacking order.
func contractorRows(l *compose.Layout) [][]string {
	byContractor := make(map[string][]schedule.Task)
	for _, t := range l.Tasks {
		byContractor[t.Contractor] = append(byContractor[t.Contractor], t)
	}
	rows := make([][]string, 0, len(l.Plan.Bands))
	for _, b := range l.Plan.Bands {
		tasks := byContractor[b.Contractor]
		slots := fmt.Sprint(b.BaseOffset)
		if b.Lanes > 1 {
			slots = fmt.Sprintf("%d–%d", b.BaseOffset, b.Last())
		}
		rows = append(rows, []string{
			b.Contractor,
			fmt.Sprint(len(tasks)),
			fmt.Sprint(lanes.MaxOverlap(tasks)),
			slots,
		})
	}
	return rows
}

// tradeRows sums each trade over the rendered range.
func tradeRows(l *compose.Layout) [][]string {
	rows := make([][]string, len(l.Summary.Trades))
	for i, trade := range l.Summary.Trades {
		series := l.Summary.Series[i]
		peak := 0.0
		if len(series) > 0 {
			peak = floats.Max(series)
		}
		rows[i] = []string{trade, fmt.Sprintf("%.1f", floats.Sum(series)), compose.SegmentLabel(peak)}
	}
	return rows
}

func printGaps(g schedule.Gaps, l *compose.Layout) {
	if g.Total() > 0 {
		printWarning("Skipped %d milestones, %d tasks, %d manpower values as unusable",
			g.Milestones, g.Tasks, g.Values)
	}
	if l.Hidden.Tasks > 0 || l.Hidden.Milestones > 0 {
		printDetail("%d tasks and %d milestones fall outside the range", l.Hidden.Tasks, l.Hidden.Milestones)
	}
	if l.Dropped > 0 {
		printDetail("%d tasks have no usable start or duration", l.Dropped)
	}
}
