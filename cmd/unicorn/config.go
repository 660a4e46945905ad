package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/unicorn-run/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Config files are searched in this order:
  1. --config <path>
  2. ~/.arcade/configs/unicorn.yaml
  3. ./configs/unicorn.yaml
  4. built-in defaults

Keys missing from a file keep their default values.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config to a file",
	Long:  `Write the default config to path, or to ~/.arcade/configs/unicorn.yaml.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a config file",
	Long:  `Parse and validate a config file, then print the values a game would use.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	_, err := os.Stdout.Write(config.GetDefaultYAML("unicorn"))
	return err
}

func runConfigInit(_ *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = expandHome(args[0])
	} else {
		dir := config.UserConfigDir()
		if dir == "" {
			return errors.New("cannot find home directory; pass a path")
		}
		path = filepath.Join(dir, config.UnicornFile)
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, config.GetDefaultYAML("unicorn"), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runConfigCheck(_ *cobra.Command, args []string) error {
	path := expandHome(args[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := config.ParseUnicorn(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# %s is valid; effective values:\n", path)
	_, err = os.Stdout.Write(out)
	return err
}
