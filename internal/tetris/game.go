// Package tetris implements the falling-block engine: the grid, the piece
// catalog, the active piece controller, the line-clear engine and the phase
// state machine that sequences menu, stage intro, play and the celebrations.
//
// The engine is pure and deterministic. A Game advances only when Step is
// called and exposes its state through Snapshot; timing, input capture and
// drawing belong to the platform.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is one independent engine instance. It is not safe for concurrent use.
type Game struct {
	rng    *rand.Rand
	logger *log.Logger
	tick   uint64

	grid     Grid
	ctl      *Controller
	progress Progress
	phase    Phase
	prev     core.Input

	titleColor   int
	captionColor int

	startStage    int
	startSubStage int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes engine debug events to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStartStage preselects the stage shown in the menu after Reset.
// Values are 0-based and clamped to the valid range.
func WithStartStage(stage, subStage int) Option {
	return func(g *Game) {
		g.startStage = core.Clamp(stage, 0, StageCount-1)
		g.startSubStage = core.Clamp(subStage, 0, SubStageCount-1)
	}
}

// New creates a game sitting in the menu, seeded with 0.
// Call Reset to choose a seed.
func New(opts ...Option) *Game {
	g := &Game{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "TETЯIS"
}

// Reset re-seeds the game and returns it to the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.grid.Clear()
	g.ctl = NewController()
	g.progress = Progress{Stage: g.startStage, SubStage: g.startSubStage}
	g.phase = MenuPhase{}
	g.prev = core.Input{}
	g.titleColor = 0
	g.captionColor = 0
	g.logger.Debug("reset", "seed", cfg.Seed, "stage", g.progress.Label())
}

// StepResult reports what happened during one tick.
type StepResult struct {
	Phase       PhaseKind
	PhaseChange bool // the tick ended in a different phase than it started
	Locked      bool // a piece was written into the grid
	Cleared     int  // rows removed by that lock
}

// Step advances the simulation by one fixed tick using the held key state in.
func (g *Game) Step(in core.Input) StepResult {
	g.tick++
	g.ctl.repeat.release(in, g.prev)
	g.prev = in

	from := g.phase.Kind()
	var res StepResult

	if from != PhaseMenu {
		g.ctl.Piece.ShowRotated = false
	}

	switch p := g.phase.(type) {
	case MenuPhase:
		g.phase = g.stepMenu(in)
	case StageIntroPhase:
		g.phase = g.stepStageIntro(p)
	case PlayingPhase:
		g.phase = g.stepPlaying(in, &res)
	case RowClearPhase:
		g.phase = g.stepRowClear(p)
	case LevelCompletePhase:
		g.phase = g.stepLevelComplete(p)
	case GameOverPhase:
		g.phase = g.stepGameOver(p)
	}

	res.Phase = g.phase.Kind()
	res.PhaseChange = res.Phase != from
	if res.PhaseChange {
		g.logger.Debug("phase", "tick", g.tick, "from", from, "to", res.Phase, "stage", g.progress.Label())
	}
	return res
}

func (g *Game) stepMenu(in core.Input) Phase {
	g.titleColor = (g.titleColor + 1) % ColorCycle

	// The throttle runs on the confirm tick too. Stage intro leaves it alone,
	// so the first Playing ticks wait out whatever is left.
	r := &g.ctl.repeat
	throttled := r.delay > 0
	if throttled {
		r.delay--
	} else {
		r.delay = MenuRepeatDelay
	}

	if in.Confirm {
		g.initStage()
		return StageIntroPhase{Ticks: StageIntroTicks}
	}
	if throttled {
		return MenuPhase{}
	}
	switch {
	case in.Up:
		g.progress.Next()
	case in.Down:
		g.progress.Prev()
	}
	return MenuPhase{}
}

func (g *Game) stepStageIntro(p StageIntroPhase) Phase {
	p.Ticks--
	if p.Ticks > 0 {
		return p
	}
	g.spawnPiece()
	return PlayingPhase{}
}

func (g *Game) stepPlaying(in core.Input, res *StepResult) Phase {
	switch g.ctl.Advance(&g.grid, in, g.progress.Speeds) {
	case OutcomeTopOut:
		g.logger.Debug("top out", "tick", g.tick, "piece", g.ctl.Piece.Type, "y", g.ctl.Piece.Y)
		return GameOverPhase{Ticks: GameOverTicks}
	case OutcomeLocked:
		return g.afterLock(res)
	}
	return PlayingPhase{}
}

// afterLock clears rows, spawns the next piece while the goal is open and picks
// the follow-up phase.
func (g *Game) afterLock(res *StepResult) Phase {
	locked := g.ctl.Piece.Type
	cr := RemoveCompleteRows(&g.grid, &g.progress.LinesRemaining, g.rng)
	res.Locked = true
	res.Cleared = cr.Rows
	g.logger.Debug("lock", "tick", g.tick, "piece", locked, "cleared", cr.Rows, "remaining", g.progress.LinesRemaining)

	if g.progress.LinesRemaining > 0 {
		g.spawnPiece()
	}
	switch {
	case len(cr.Fragments) > 0:
		return RowClearPhase{Fragments: cr.Fragments, Rows: cr.Rows, CaptionY: cr.CaptionY}
	case g.progress.LinesRemaining == 0:
		return LevelCompletePhase{Ticks: LevelCompleteTicks}
	}
	return PlayingPhase{}
}

func (g *Game) stepRowClear(p RowClearPhase) Phase {
	p.Fragments = UpdateFragments(p.Fragments)
	p.CaptionY -= captionRise
	g.captionColor = (g.captionColor + 1) % ColorCycle

	switch {
	case len(p.Fragments) > 0:
		return p
	case g.progress.LinesRemaining == 0:
		return LevelCompletePhase{Ticks: LevelCompleteTicks}
	}
	return PlayingPhase{}
}

func (g *Game) stepLevelComplete(p LevelCompletePhase) Phase {
	p.Ticks--
	p.Index = (p.Index + 1) % LevelCompleteCycle
	if p.Ticks > 0 {
		return p
	}
	g.progress.Next()
	g.initStage()
	return StageIntroPhase{Ticks: StageIntroTicks}
}

func (g *Game) stepGameOver(p GameOverPhase) Phase {
	p.Ticks--
	if p.Ticks > 0 {
		return p
	}
	g.ctl.repeat.delay = 0
	return MenuPhase{}
}

// initStage prepares the board and goal for the current stage.
func (g *Game) initStage() {
	g.progress.Speeds = SpeedsForStage(g.progress.Stage)
	g.progress.LinesRemaining = GoalLines
	g.grid.InitWithJunk(g.progress.JunkRows(), g.rng)
	g.logger.Debug("stage", "label", g.progress.Label(), "junk", g.progress.JunkRows(), "speed", g.progress.Speeds.Normal)
}

func (g *Game) spawnPiece() {
	g.ctl.Spawn(PieceType(g.rng.Intn(PieceCount)))
}

// Phase returns the current phase value. Row clear fragments are copied, the
// engine updates its own slice in place.
func (g *Game) Phase() Phase {
	if p, ok := g.phase.(RowClearPhase); ok {
		p.Fragments = append([]Fragment(nil), p.Fragments...)
		return p
	}
	return g.phase
}

// Progress returns the current stage progress.
func (g *Game) Progress() Progress {
	return g.progress
}

// Tick returns the number of ticks since the last Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
