package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/giboul/tsunami-benchmarks/control"
)

var rootCmd = &cobra.Command{
	Use:   "transect",
	Short: "Animate and inspect one-dimensional tsunami transect runs",
	Long: `Reads the surface, velocity and wet/dry output of a transect run, masks the
dry samples and renders the free surface and velocity field frame by frame.`,
	SilenceUsage: true,
}

var (
	configFP  string
	overrides []string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFP, "config", "c", "", "YAML control file")
	rootCmd.PersistentFlags().StringArrayVar(&overrides, "set", nil, "override a setting, key=value (repeatable)")
	rootCmd.AddCommand(animateCmd, gaugeCmd, inspectCmd)
}

// settings reads the control file, applies --set overrides and the directory argument.
func settings(args []string) (control.Config, error) {
	cfg := control.Default()
	if configFP != "" {
		c, err := control.Load(configFP)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	for _, kv := range overrides {
		if err := cfg.Set(kv); err != nil {
			return cfg, err
		}
	}
	if len(args) > 0 {
		cfg.Data.Dir = args[0]
	}
	return cfg, cfg.Validate()
}

func main() {
	fmt.Println("")
	t0 := time.Now()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("\nRun complete. n processes: %v (%v)\n", runtime.GOMAXPROCS(0), time.Since(t0).Round(time.Millisecond))
}
