// colordrop is a drag-and-drop color matching game.
//
// Usage:
//
//	colordrop play       - Play in the terminal (mouse required)
//	colordrop window     - Play in a desktop window
//	colordrop serve      - Start SSH server for remote play
//	colordrop snapshot   - Render a fresh board to PNG
//
// Global flags:
//
//	--config <path>     - Custom YAML config
//	--seed <value>      - Set RNG seed for reproducible boards
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-drop/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colordrop",
	Short: "Color Drop - drag circles onto the matching color",
	Long: `Color Drop is a small drag-and-drop matching game.

Drag each circle onto the square in the bottom-left corner when the
square shows the circle's color. Clear the board to win.

Available commands:
  play      - Play in the terminal (default)
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  snapshot  - Render a fresh board to PNG

Examples:
  colordrop
  colordrop play --seed 42
  colordrop window --width 1024 --height 768
  colordrop serve --ssh :2222
  colordrop snapshot --out board.png`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// loadConfig loads the game configuration from --config or the default locations.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a stderr logger honoring --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
