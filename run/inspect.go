package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/giboul/tsunami-benchmarks/transect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "List the numeric variables of a .nc or .bin file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectToBin string

func init() {
	inspectCmd.Flags().StringVar(&inspectToBin, "to-bin", "", "convert the variables into the .bin layout")
}

func runInspect(cmd *cobra.Command, args []string) error {
	vs, err := transect.Inspect(args[0])
	if err != nil {
		return err
	}
	fmt.Printf(" %s: %d variables\n", args[0], len(vs))
	for _, v := range vs {
		mn, mx, nan := math.Inf(1), math.Inf(-1), 0
		for _, x := range v.Values {
			if math.IsNaN(x) {
				nan++
				continue
			}
			mn, mx = math.Min(mn, x), math.Max(mx, x)
		}
		fmt.Printf("  %-8s %v  min %g  max %g", v.Name, v.Shape, mn, mx)
		if nan > 0 {
			fmt.Printf("  (%d NaN)", nan)
		}
		fmt.Println()
	}
	if inspectToBin != "" {
		if err := transect.WriteBin(inspectToBin, vs); err != nil {
			return err
		}
		fmt.Printf(" written to %s\n", inspectToBin)
	}
	return nil
}
