package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-drop/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a window. Mouse and touch input are supported.

Controls:
  Drag      - Move a circle
  Enter     - Confirm the victory dialog
  R         - New board
  Esc       - Quit

Examples:
  colordrop window
  colordrop window --width 1024 --height 768`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger("colordrop")
	if err != nil {
		return err
	}

	engine := window.NewEngine(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Width:  flagWidth,
		Height: flagHeight,
		Logger: logger,
	})
	logger.Info("opening window", "width", flagWidth, "height", flagHeight)
	return engine.Run()
}
