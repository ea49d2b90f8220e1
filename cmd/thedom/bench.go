package main

import (
	"fmt"
	"strings"

	"github.com/BigRLab/thedom/internal/bench"
	"github.com/BigRLab/thedom/internal/presentation/tui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure how fast every product builds and renders",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		loops, _ := cmd.Flags().GetInt("loops")
		depth, _ := cmd.Flags().GetInt("depth")
		metricsOut, _ := cmd.Flags().GetString("metrics-out")
		top, _ := cmd.Flags().GetInt("top")

		reg := prometheus.NewRegistry()
		runner := bench.NewRunner(eng.Factory(),
			bench.WithLoops(loops),
			bench.WithDepth(depth),
			bench.WithMetrics(bench.NewMetrics(reg)),
			bench.WithLogger(eng.Logger()),
		)
		report, err := runner.Run(cmd.Context())
		if err != nil {
			return err
		}

		if metricsOut != "" {
			if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
		}

		out, err := tui.NewRenderer()(formatReport(report, top))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func formatReport(r *bench.Report, top int) string {
	var md strings.Builder
	md.WriteString("# Benchmark\n\n| Run | Time | Size |\n|---|---|---|\n")
	fmt.Fprintf(&md, "| create every product once | %s | |\n", r.CreateAll)
	fmt.Fprintf(&md, "| init x%d | %s | |\n", r.Loops, r.LoopedInit)
	fmt.Fprintf(&md, "| render x%d | %s | %d |\n", r.Loops, r.LoopedRender, r.LoopedSize)
	fmt.Fprintf(&md, "| nested depth %d | %s | %d |\n", r.Depth, r.Nested, r.NestedSize)

	products := r.Products
	if top > 0 && len(products) > top {
		products = products[len(products)-top:]
	}
	md.WriteString("\n## Slowest products\n\n| Product | Time | Size |\n|---|---|---|\n")
	for i := len(products) - 1; i >= 0; i-- {
		p := products[i]
		fmt.Fprintf(&md, "| %s | %s | %d |\n", p.Product, p.Duration, p.Size)
	}
	return md.String()
}

func init() {
	benchCmd.Flags().Int("loops", 100, "Times every product is built in the looped run")
	benchCmd.Flags().Int("depth", 900, "Depth of the nested tree run")
	benchCmd.Flags().Int("top", 10, "Number of slowest products to list, 0 for all")
	benchCmd.Flags().String("metrics-out", "", "Write Prometheus metrics to this file")
	rootCmd.AddCommand(benchCmd)
}
