// unicorn is Unicorn Run, an endless runner for the terminal and the desktop.
//
// Usage:
//
//	unicorn                  - Start the menu (same as "unicorn menu")
//	unicorn play             - Play straight away in the terminal
//	unicorn window           - Play in a desktop window
//	unicorn menu             - Menu with play, skins and high scores
//	unicorn serve            - Start SSH server for remote play
//	unicorn scores           - Show high scores
//	unicorn skins [name]     - List skins or select one
//	unicorn config           - Print, write or check the game config
//	unicorn list             - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/unicorn.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-run/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "unicorn",
	Short: "Unicorn Run - an endless runner in your terminal",
	Long: `Unicorn Run is a side-scrolling arcade game. The unicorn runs on its
own; jump, double-jump and dash through stars, collect power-ups and
keep your wishes.

Available commands:
  play     - Play straight away in the terminal
  window   - Play in a desktop window
  menu     - Menu with play, skins and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  skins    - List or select unicorn skins
  config   - Print, write or check the game config

Examples:
  unicorn
  unicorn play --difficulty hard
  unicorn window --skin Midnight
  unicorn serve --ssh :2222
  unicorn scores`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	addGameFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(configCmd)
}
