package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tsunami "github.com/giboul/tsunami-benchmarks"
)

var gaugeCmd = &cobra.Command{
	Use:   "gauge [dir]",
	Short: "Compare the simulated series at a gauge with a measured record",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGauge,
}

var (
	gaugeX        float64
	gaugeObs      string
	gaugeTOffset  float64
	gaugeOut      string
	gaugeQuantity string
)

func init() {
	gaugeCmd.Flags().Float64Var(&gaugeX, "x", 0., "gauge position [m]")
	gaugeCmd.Flags().StringVar(&gaugeObs, "obs", "", "measured record, two columns t value")
	gaugeCmd.Flags().Float64Var(&gaugeTOffset, "toffset", 0., "added to the measured times [s]")
	gaugeCmd.Flags().StringVarP(&gaugeOut, "out", "o", "gauge.png", "figure output (.png, .svg, .pdf)")
	gaugeCmd.Flags().StringVarP(&gaugeQuantity, "quantity", "q", "u", "eta or u")
	gaugeCmd.MarkFlagRequired("x")
}

func runGauge(cmd *cobra.Command, args []string) error {
	cfg, err := settings(args)
	if err != nil {
		return err
	}
	g, err := tsunami.Gauge(cfg, gaugeX, gaugeQuantity, gaugeObs, gaugeTOffset, gaugeOut, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf(" gauge at x = %.3f (position %d) written to %s\n", g.X, g.Index, gaugeOut)
	return nil
}
