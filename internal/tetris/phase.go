package tetris

// Phase durations and cycles, in ticks.
const (
	StageIntroTicks    = 90
	LevelCompleteTicks = 300
	GameOverTicks      = 300
	LevelCompleteCycle = 30 // GOAL! caption size animation period
	ColorCycle         = 64 // title and clear caption color wheel
	captionRise        = 4  // pixels the clear caption moves up per tick
)

// PhaseKind names a phase for callers that only need the tag.
type PhaseKind int

const (
	PhaseMenu PhaseKind = iota
	PhaseStageIntro
	PhasePlaying
	PhaseRowClear
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name.
func (k PhaseKind) String() string {
	switch k {
	case PhaseMenu:
		return "menu"
	case PhaseStageIntro:
		return "stage_intro"
	case PhasePlaying:
		return "playing"
	case PhaseRowClear:
		return "row_clear"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Phase is the state machine's current state. Each concrete type carries only
// the data that state needs.
type Phase interface {
	Kind() PhaseKind
}

// MenuPhase waits for the player to pick a stage and confirm.
type MenuPhase struct{}

// StageIntroPhase shows the stage label before the first piece drops.
type StageIntroPhase struct {
	Ticks int
}

// PlayingPhase drives the active piece.
type PlayingPhase struct{}

// RowClearPhase animates fragments from the last clear. The piece is frozen.
type RowClearPhase struct {
	Fragments []Fragment
	Rows      int
	CaptionY  int
}

// LevelCompletePhase celebrates reaching the goal.
type LevelCompletePhase struct {
	Ticks int
	Index int // 0..LevelCompleteCycle-1
}

// GameOverPhase holds the final board on screen before returning to the menu.
type GameOverPhase struct {
	Ticks int
}

func (MenuPhase) Kind() PhaseKind          { return PhaseMenu }
func (StageIntroPhase) Kind() PhaseKind    { return PhaseStageIntro }
func (PlayingPhase) Kind() PhaseKind       { return PhasePlaying }
func (RowClearPhase) Kind() PhaseKind      { return PhaseRowClear }
func (LevelCompletePhase) Kind() PhaseKind { return PhaseLevelComplete }
func (GameOverPhase) Kind() PhaseKind      { return PhaseGameOver }
