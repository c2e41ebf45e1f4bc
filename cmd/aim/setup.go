package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/core"
)

// openLogger builds the logger from --log-level and --log-file.
// Without a log file, logs go to fallback. The returned func closes the file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "aim",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig combines the loaded config with command-line overrides.
func runtimeConfig(cmd *cobra.Command, cfg config.AimConfig, width, height int) (core.RuntimeConfig, error) {
	fps := cfg.Display.FPS
	if cmd.Flags().Changed("fps") {
		fps = flagFPS
	}
	if fps < config.MinFPS || fps > config.MaxFPS {
		return core.RuntimeConfig{}, fmt.Errorf("--fps %d out of range [%d, %d]", fps, config.MinFPS, config.MaxFPS)
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     flagSeed,
	}, nil
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
