package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/platform/tui"
	"github.com/vovakirdan/aim-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play the aim trainer in the terminal. Requires a terminal with
mouse support; the 800x600 playfield is scaled to the terminal size.

Controls:
  Left click  - Start / shoot / back to menu
  Q/Ctrl+C    - Quit

Logs are discarded unless --log-file is given, since the game owns the screen.

Examples:
  aim play
  aim play --fps 30
  aim play --log-level debug --log-file ~/.arcade/aim.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt, err := runtimeConfig(cmd, cfg, width, height)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting terminal session", "cols", width, "rows", height, "fps", rt.TickRate)
	game, err := registry.Create(gameID, registry.Deps{Colors: cfg.Colors, Logger: logger})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, rt, logger)

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
