package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/platform/tui"
	"github.com/vovakirdan/unicorn-run/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Unicorn Run in the terminal",
	Long: `Start a run straight away, skipping the menu.

Controls:
  Space, W, Up     - Jump (press again in the air to double jump)
  Z, X, Right      - Dash
  P, Esc           - Pause / resume
  R                - Restart after game over
  B                - Back (ends the run from pause or game over)
  M                - Toggle sound
  Q, Ctrl+C        - Quit`,
	Example: `  unicorn play
  unicorn play --difficulty hard --skin Golden
  unicorn play --config ./my-unicorn.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	env, err := openGameEnv(true)
	if err != nil {
		return err
	}
	defer env.Close()

	game, err := registry.Create(unicorn.GameID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	svc := tui.Services{
		Store:   env.store,
		Audio:   env.audio,
		Logger:  env.logger,
		Watcher: env.watcher,
	}
	if err := tui.Run(game, svc, terminalConfig()); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
