package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-run/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the game menu",
	Long: `Open the menu with play, skin selection and the scoreboard.

Menu navigation:
  Up/Down, W/S, J/K  - Move selection
  Enter, Space       - Select
  Tab                - Scoreboard
  Q, Esc             - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	env, err := openGameEnv(true)
	if err != nil {
		return err
	}
	defer env.Close()

	svc := tui.Services{
		Store:   env.store,
		Audio:   env.audio,
		Logger:  env.logger,
		Watcher: env.watcher,
	}
	if err := tui.RunApp(svc, terminalConfig()); err != nil {
		return fmt.Errorf("menu error: %w", err)
	}
	return nil
}
