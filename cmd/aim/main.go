// aim is a reaction-time aim trainer for the terminal and the desktop.
//
// Usage:
//
//	aim play     - Play in the terminal (mouse required)
//	aim window   - Play in a desktop window
//	aim config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Frame-rate cap (default: from config, 60)
//	--seed <value>       - RNG seed for reproducible target positions
//	--config <path>      - Custom config YAML
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to trigger their init() registration
	_ "github.com/vovakirdan/aim-arcade/internal/games/aim"
)

// gameID is the registry entry the play and window commands run.
const gameID = "aim"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aim",
	Short: "Aim Trainer - click targets against the clock",
	Long: `Aim Trainer is a reaction-time game. Click anywhere to start a
30 second session, then click the bullseye as many times as you can.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  aim play
  aim window --fps 144
  aim play --seed 42
  aim config > ~/.arcade/configs/aim.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame-rate cap (overrides display.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
