package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	tsunami "github.com/giboul/tsunami-benchmarks"
)

var animateCmd = &cobra.Command{
	Use:   "animate [dir]",
	Short: "Render the masked transect as an animation",
	Long: `Loads eta, u and the wet/dry mask from dir (or the control file), renders every
stride-th time step and writes a stand-alone HTML player. Optionally also writes an
animated GIF and the individual frames.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnimate,
}

var (
	animOut    string
	animGIF    string
	animFrames string
	animBar    bool
)

func init() {
	animateCmd.Flags().StringVarP(&animOut, "out", "o", "", "HTML output (default from control file)")
	animateCmd.Flags().StringVar(&animGIF, "gif", "", "also write an animated GIF")
	animateCmd.Flags().StringVar(&animFrames, "frames", "", "also write every frame into this directory")
	animateCmd.Flags().BoolVar(&animBar, "progress", false, "show a progress bar while rendering")
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := settings(args)
	if err != nil {
		return err
	}
	if animOut != "" {
		cfg.Out = animOut
	}
	cfg.Progress = cfg.Progress || animBar

	a, err := tsunami.Animate(cfg, os.Stdout)
	if err != nil {
		return err
	}

	title := strings.TrimSuffix(filepath.Base(cfg.Out), filepath.Ext(cfg.Out))
	if err := a.WritePage(cfg.Out, title); err != nil {
		return err
	}
	fmt.Printf(" animation written to %s\n", cfg.Out)
	if animGIF != "" {
		if err := a.WriteGIF(animGIF); err != nil {
			return err
		}
		fmt.Printf(" GIF written to %s\n", animGIF)
	}
	if animFrames != "" {
		if err := a.WriteFrames(animFrames); err != nil {
			return err
		}
		fmt.Printf(" %d frames written to %s\n", a.Len(), animFrames)
	}
	return nil
}
