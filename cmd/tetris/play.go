package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game at the level menu.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate (menu: next level)
  Down, S          - Drop faster (menu: previous level)
  Enter            - Start
  ?                - Toggle help
  Q/Ctrl+C         - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level preselected in the menu, e.g. 3-2")
	simulateCmd.Flags().StringVar(&flagLevel, "level", "", "Level to play, e.g. 3-2")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	stage, sub, err := startLevel(cfg)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs a terminal, try 'tetris simulate'")
	}

	// Centre on the real terminal until the first resize event arrives.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	f, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer f.Close()
	logger, err := newLogger(f, cfg.LogLevel)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     cfg.Seed,
		},
		HoldTicks:     cfg.Input.HoldTicks,
		CellWidth:     cfg.Display.CellWidth,
		StartStage:    stage,
		StartSubStage: sub,
		Logger:        logger,
	})
}

// startLevel returns the 0-based start level from --level or the config.
func startLevel(cfg config.Config) (stage, sub int, err error) {
	if flagLevel == "" {
		return cfg.StartStage - 1, cfg.StartSubStage - 1, nil
	}
	stage, sub, err = parseLevel(flagLevel)
	if err != nil {
		return 0, 0, err
	}
	return stage, sub, nil
}

// parseLevel parses a 1-based "stage-substage" label into 0-based indices.
func parseLevel(s string) (stage, sub int, err error) {
	var rest string
	n, _ := fmt.Sscanf(s, "%d-%d%s", &stage, &sub, &rest)
	if n != 2 || stage < 1 || stage > 20 || sub < 1 || sub > 5 {
		return 0, 0, fmt.Errorf("%w: level %q, want 1-1 through 20-5", config.ErrInvalid, s)
	}
	return stage - 1, sub - 1, nil
}
