package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagTicks int
	flagFrame bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session driven by a random player",
	Long: `Run the engine without a terminal for a fixed number of ticks. A seeded
random player starts the selected level and mashes keys. The same seed always
produces the same run. Logs go to stderr, the summary to stdout.

Examples:
  tetris simulate --seed 7
  tetris simulate --seed 7 --ticks 100000 --level 1-5 --frame`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 20000, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame")
}

// Summary is the outcome of a simulated run.
type Summary struct {
	RunID       string
	Seed        int64
	Ticks       int
	Locks       int
	LinesClear  int
	ClearCounts [5]int // index = rows cleared by one lock
	Goals       int
	GameOvers   int
	FinalStage  string
	FinalPhase  tetris.PhaseKind
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	stage, sub, err := startLevel(cfg)
	if err != nil {
		return err
	}
	if flagTicks < 1 {
		return fmt.Errorf("--ticks must be positive")
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runID := uuid.NewString()
	logger = logger.With("run", runID)

	game := tetris.New(tetris.WithLogger(logger), tetris.WithStartStage(stage, sub))
	game.Reset(core.RuntimeConfig{TickRate: cfg.TickRate, Seed: seed})

	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "level", game.Progress().Label())
	sum := simulate(game, newBot(seed), flagTicks)
	sum.RunID = runID
	sum.Seed = seed
	logger.Info("simulation finished", "locks", sum.Locks, "lines", sum.LinesClear, "stage", sum.FinalStage)

	out := cmd.OutOrStdout()
	printSummary(out, sum)
	if flagFrame {
		fmt.Fprintln(out)
		printFrame(out, game)
	}
	return nil
}

// printFrame draws the current frame as plain text, one block per column.
func printFrame(w io.Writer, game *tetris.Game) {
	r := tui.NewRenderer(1)
	scr := core.NewScreen(r.Size())
	r.Draw(scr, game.Snapshot())
	for y := range scr.Height() {
		fmt.Fprintln(w, strings.TrimRight(scr.Row(y), " "))
	}
}

// simulate steps game for ticks ticks with inputs from bot.
func simulate(game *tetris.Game, b *bot, ticks int) Summary {
	var sum Summary
	for i := 0; i < ticks; i++ {
		res := game.Step(b.next(game.Phase().Kind()))
		sum.Ticks++
		if res.Locked {
			sum.Locks++
			sum.LinesClear += res.Cleared
			sum.ClearCounts[min(res.Cleared, 4)]++
		}
		if res.PhaseChange {
			switch res.Phase {
			case tetris.PhaseLevelComplete:
				sum.Goals++
			case tetris.PhaseGameOver:
				sum.GameOvers++
			}
		}
	}
	sum.FinalStage = game.Progress().Label()
	sum.FinalPhase = game.Phase().Kind()
	return sum
}

// bot is a seeded random player. It holds each chosen input for a few ticks
// so the engine sees presses, repeats and releases.
type bot struct {
	rng  *rand.Rand
	cur  core.Input
	left int
}

func newBot(seed int64) *bot {
	return &bot{rng: rand.New(rand.NewSource(seed ^ 0x5eed))}
}

func (b *bot) next(phase tetris.PhaseKind) core.Input {
	if phase == tetris.PhaseMenu {
		// Alternate so confirm is seen as a fresh press after game over.
		b.cur = core.Input{Confirm: !b.cur.Confirm}
		return b.cur
	}
	if b.left > 0 {
		b.left--
		return b.cur
	}

	b.left = 1 + b.rng.Intn(8)
	switch r := b.rng.Intn(10); {
	case r < 2:
		b.cur = core.Input{Left: true}
	case r < 4:
		b.cur = core.Input{Right: true}
	case r < 5:
		b.cur = core.Input{Up: true}
	case r < 7:
		b.cur = core.Input{Down: true}
	default:
		b.cur = core.Input{}
	}
	return b.cur
}

func printSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "run        %s\n", s.RunID)
	fmt.Fprintf(w, "seed       %d\n", s.Seed)
	fmt.Fprintf(w, "ticks      %d\n", s.Ticks)
	fmt.Fprintf(w, "locks      %d\n", s.Locks)
	fmt.Fprintf(w, "lines      %d\n", s.LinesClear)
	for n := 1; n <= 4; n++ {
		fmt.Fprintf(w, "  %-10s %d\n", tetris.CaptionFor(n), s.ClearCounts[n])
	}
	fmt.Fprintf(w, "goals      %d\n", s.Goals)
	fmt.Fprintf(w, "game overs %d\n", s.GameOvers)
	fmt.Fprintf(w, "final      %s (%s)\n", s.FinalStage, s.FinalPhase)
}
