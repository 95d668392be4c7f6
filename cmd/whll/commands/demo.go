package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"whll.lopezb.com/internal/pds/hyperloglog"
)

// DemoCommand holds the flags of the demo subcommand.
type DemoCommand struct {
	app *app

	elements int
	maxValue int
	seed     uint64
	weight   float64
}

func newDemoCommand(a *app) *cobra.Command {
	dc := &DemoCommand{app: a}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Compare exact and estimated counts on a small random list",
		Long: `Draw a list of random integers in [1, max] and count it three ways: a dense
sketch with p=14, a sparse sketch with p=4 and a dense weighted sketch with p=6
where every value carries the same weight. The exact answers are printed
alongside.`,
		Args: cobra.NoArgs,
		RunE: dc.run,
	}

	cmd.Flags().IntVarP(&dc.elements, "elements", "n", 10, "Number of random values")
	cmd.Flags().IntVar(&dc.maxValue, "max", 20, "Largest random value")
	cmd.Flags().Uint64Var(&dc.seed, "demo-seed", 111, "Seed of the value generator and the weighted sketch")
	cmd.Flags().Float64Var(&dc.weight, "weight", 5, "Weight of every value in the weighted sketch")

	return cmd
}

// demoRow is one line of the demo table.
type demoRow struct {
	name     string
	sketch   sketchView
	estimate uint64
	exact    float64
}

func (dc *DemoCommand) run(cmd *cobra.Command, _ []string) error {
	if dc.elements < 0 || dc.maxValue < 1 {
		return fmt.Errorf("elements must be >= 0 and max >= 1, got %d and %d", dc.elements, dc.maxValue)
	}

	rng := rand.New(rand.NewPCG(dc.seed, dc.seed))
	values := make([]int32, dc.elements)
	for i := range values {
		values[i] = int32(rng.IntN(dc.maxValue) + 1)
	}
	distinct := make(map[int32]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}

	denseOpts, err := dc.app.sketchOptions(
		hyperloglog.WithEncoding(hyperloglog.Dense),
		hyperloglog.WithPrecision(14))
	if err != nil {
		return err
	}
	sparseOpts, err := dc.app.sketchOptions(
		hyperloglog.WithEncoding(hyperloglog.Sparse),
		hyperloglog.WithPrecision(4))
	if err != nil {
		return err
	}
	weightedOpts, err := dc.app.sketchOptions(
		hyperloglog.WithEncoding(hyperloglog.Dense),
		hyperloglog.WithPrecision(6),
		hyperloglog.WithRandomSource(hyperloglog.NewRandomSource(dc.seed)))
	if err != nil {
		return err
	}

	hll1, err := hyperloglog.New(denseOpts...)
	if err != nil {
		return err
	}
	hll2, err := hyperloglog.New(sparseOpts...)
	if err != nil {
		return err
	}
	whll, err := hyperloglog.NewWeighted(weightedOpts...)
	if err != nil {
		return err
	}

	for _, v := range values {
		hll1.AddInt32(v)
		hll2.AddInt32(v)
		if _, err := whll.AddInt32(v, dc.weight); err != nil {
			return err
		}
	}

	rows := []demoRow{
		{name: "HLL dense", sketch: hll1, exact: float64(len(distinct))},
		{name: "HLL sparse", sketch: hll2, exact: float64(len(distinct))},
		{name: "Weighted HLL", sketch: whll, exact: dc.weight * float64(len(distinct))},
	}
	for i := range rows {
		rows[i].estimate = rows[i].sketch.Count()
	}

	dc.app.logger.Debug("demo values", "values", values)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Values: %v\n", values)
	fmt.Fprintf(out, "Distinct values: %d\n\n", len(distinct))
	fmt.Fprintln(out, renderDemo(rows))
	return nil
}

func renderDemo(rows []demoRow) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Sketch", "Encoding", "p", "Estimate", "Exact", "Std. error"})

	for _, r := range rows {
		tbl.AppendRow(table.Row{
			r.name,
			r.sketch.Encoding().String(),
			r.sketch.Precision(),
			humanize.Comma(int64(r.estimate)),
			humanize.CommafWithDigits(r.exact, 2),
			fmt.Sprintf("%.2f%%", r.sketch.StandardError()*100),
		})
	}
	return tbl.Render()
}
