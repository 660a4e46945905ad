package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List unicorn skins",
	Long:  `Shows every skin and marks the selected one.`,
	Args:  cobra.NoArgs,
	RunE:  runSkins,
}

var skinsSetCmd = &cobra.Command{
	Use:   "set <name|index>",
	Short: "Select the skin used by new games",
	Example: `  unicorn skins set Midnight
  unicorn skins set 2`,
	Args: cobra.ExactArgs(1),
	RunE: runSkinsSet,
}

func init() {
	skinsCmd.AddCommand(skinsSetCmd)
}

// parseSkin accepts a skin name or its index in the list.
func parseSkin(arg string) (int, error) {
	if index, ok := unicorn.SkinIndex(arg); ok {
		return index, nil
	}
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 || index >= len(unicorn.Skins) {
		return 0, fmt.Errorf("unknown skin %q (run 'unicorn skins' to list them)", arg)
	}
	return index, nil
}

func runSkins(_ *cobra.Command, _ []string) error {
	selected := 0
	if store, err := storage.Open(flagDBPath); err == nil {
		selected, _ = store.SelectedSkin()
		store.Close()
	}

	fmt.Println("Skins:")
	fmt.Println()
	for i, s := range unicorn.Skins {
		marker := " "
		if i == selected {
			marker = "*"
		}
		fmt.Printf("  %s %d  %s\n", marker, i, s.Name)
	}
	fmt.Println()
	fmt.Println("Run 'unicorn skins set <name>' to change it.")
	return nil
}

func runSkinsSet(_ *cobra.Command, args []string) error {
	index, err := parseSkin(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if err := store.SaveSelectedSkin(index); err != nil {
		return fmt.Errorf("saving skin: %w", err)
	}
	fmt.Printf("Selected skin: %s\n", unicorn.SkinAt(index).Name)
	return nil
}
