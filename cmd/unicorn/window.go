package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-run/internal/platform/gfx"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play Unicorn Run in a desktop window",
	Long: `Open a window with the full graphics frontend: sprites, particles,
screen shake and sound.

The keys are the same as in the terminal.`,
	Example: `  unicorn window
  unicorn window --scale 1.5 --skin Mint`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
	addGameFlags(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	if flagScale <= 0 {
		return fmt.Errorf("--scale must be positive, got %g", flagScale)
	}

	env, err := openGameEnv(false)
	if err != nil {
		return err
	}
	defer env.Close()

	err = gfx.Run(gfx.Options{
		Store:    env.store,
		Audio:    env.audio,
		Logger:   env.logger,
		Watcher:  env.watcher,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Skin:     env.skin,
		Scale:    flagScale,
	})
	if err != nil {
		return fmt.Errorf("window error: %w", err)
	}
	return nil
}
