package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/unicorn-run/internal/audio"
	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

// Flags shared by the commands that start a game.
var (
	flagConfig     string
	flagDifficulty string
	flagSkin       string
	flagMute       bool
	flagWatch      bool
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagSkin, "skin", "", "Skin name for this run (see 'unicorn skins')")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the CLI logger. Terminal frontends own the screen, so they
// log to ~/.arcade/unicorn.log instead of stderr.
func newLogger(toFile bool) (*log.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if toFile {
		path := expandHome(filepath.Join("~", ".arcade", "unicorn.log"))
		os.MkdirAll(filepath.Dir(path), 0o755) //nolint:errcheck // OpenFile reports the failure
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			out, closer = f, f
		} else {
			out = io.Discard
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "unicorn",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameEnv holds what a playing session needs. Any part but the logger may be nil.
type gameEnv struct {
	logger  *log.Logger
	store   *storage.Store
	audio   *audio.Player
	watcher *config.Watcher
	skin    int
	closers []io.Closer
}

// Close releases everything in reverse order of opening.
func (e *gameEnv) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openGameEnv applies the game flags and opens storage, audio and the
// config watcher. Only bad flag values are errors; unavailable
// resources are logged and left out.
func openGameEnv(logToFile bool) (*gameEnv, error) {
	if flagFPS <= 0 {
		return nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	skinFlag := -1
	if flagSkin != "" {
		index, ok := unicorn.SkinIndex(flagSkin)
		if !ok {
			return nil, fmt.Errorf("unknown skin %q (run 'unicorn skins' to list them)", flagSkin)
		}
		skinFlag = index
	}

	logger, logCloser := newLogger(logToFile)
	env := &gameEnv{logger: logger, closers: []io.Closer{logCloser}}

	unicorn.SetConfigPath(flagConfig)
	unicorn.SetDifficultyPreset(flagDifficulty)
	cfg, err := unicorn.LoadConfig()
	if err != nil {
		logger.Warn("Using default game config", "err", err)
	}

	env.store, err = storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("Could not open scores database", "path", flagDBPath, "err", err)
		env.store = nil
	} else {
		env.closers = append(env.closers, env.store)
		env.skin, err = env.store.SelectedSkin()
		if err != nil {
			logger.Warn("Could not read selected skin", "err", err)
		}
		if muted, err := env.store.Muted(); err == nil && muted {
			cfg.Audio.Muted = true
		}
	}
	if skinFlag >= 0 {
		env.skin = skinFlag
	}
	unicorn.SetSkin(env.skin)

	if flagMute {
		cfg.Audio.Muted = true
	}
	env.audio = audio.Open(cfg.Audio, logger)
	env.closers = append(env.closers, closerFunc(func() error {
		env.audio.Close()
		return nil
	}))

	if flagWatch {
		var target string
		env.watcher, target, err = watchConfig(flagConfig)
		if err != nil {
			logger.Warn("Config watching disabled", "err", err)
			env.watcher = nil
		} else {
			logger.Info("Watching config", "path", target)
			env.closers = append(env.closers, env.watcher)
		}
	}

	return env, nil
}

// openServeEnv applies the config flags for a server. The SSH server opens
// its own store and plays no sound, so only the logger is set.
func openServeEnv() (*gameEnv, error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	logger, logCloser := newLogger(false)
	unicorn.SetConfigPath(flagConfig)
	unicorn.SetDifficultyPreset(flagDifficulty)
	if _, err := unicorn.LoadConfig(); err != nil {
		logger.Warn("Using default game config", "err", err)
	}
	return &gameEnv{logger: logger, closers: []io.Closer{logCloser}}, nil
}

// watchConfig watches the config file the game would load. Without one, it
// watches the user config directory so a file created there is picked up.
func watchConfig(custom string) (*config.Watcher, string, error) {
	if path := config.ResolvePath(custom); path != "" {
		w, err := config.WatchFile(path)
		return w, path, err
	}

	dir := config.UserConfigDir()
	if dir == "" {
		return nil, "", errors.New("no config file and no home directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("creating config directory: %w", err)
	}
	w, err := config.NewWatcher(dir)
	return w, dir, err
}
