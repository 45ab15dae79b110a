package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-drop/internal/config"
	"github.com/vovakirdan/color-drop/internal/platform/tui"
)

var (
	flagLogFile      string
	flagSnapshotsDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Requires a terminal with mouse support.

Controls:
  Drag (left button)  - Move a circle
  Enter               - Confirm the victory dialog
  R                   - New board
  Ctrl+S              - Save the board as PNG
  Q/Ctrl+C            - Quit

Examples:
  colordrop play
  colordrop play --seed 42
  colordrop play --log-file ./colordrop.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal is used by the game)")
	playCmd.Flags().StringVar(&flagSnapshotsDir, "snapshots", "", "Directory for Ctrl+S snapshots (default ~/.colordrop/snapshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; try 'colordrop window' or 'colordrop snapshot'")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logger *log.Logger
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()

		logger, err = newLogger("colordrop")
		if err != nil {
			return err
		}
		logger.SetOutput(f)
	}

	snapshots := flagSnapshotsDir
	if snapshots == "" {
		if dir, dirErr := config.DataDir(); dirErr == nil {
			snapshots = filepath.Join(dir, "snapshots")
		}
	}

	return tui.Run(tui.Options{
		Config:      cfg,
		Seed:        flagSeed,
		SnapshotDir: snapshots,
		Logger:      logger,
	})
}
