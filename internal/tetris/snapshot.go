package tetris

// Rotated pieces are drawn turned by this many degrees about their pivot for
// the single tick in which the rotation happened.
const RotatedAngle = -45

// MenuStageLine is the index in MenuLines holding the selected stage label.
const MenuStageLine = 4

// PieceView is the active piece as the renderer should draw it.
type PieceView struct {
	Type     PieceType
	Rotation int
	X, Y     int // origin in pixels, truncated
	XLag     int
	Rotated  bool
	Angle    int // degrees, 0 unless Rotated
	Pivot    Offset
	Cells    Shape
}

// Blocks returns the top-left pixel of each block with XLag applied.
func (v PieceView) Blocks() [4]Offset {
	var out [4]Offset
	for i, o := range v.Cells {
		out[i] = Offset{X: v.X + o.X + v.XLag, Y: v.Y + o.Y}
	}
	return out
}

// Overlay is the text drawn over the board in non-playing phases.
type Overlay struct {
	Text  string
	Index int // animation frame, meaning depends on the phase
	Y     int // pixel row for captions that move, otherwise 0
	Color int // index into the 64-step color wheel
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick  uint64
	Phase PhaseKind

	Grid  Grid
	Piece *PieceView // nil when no piece is drawn

	LinesRemaining int
	StageLabel     string
	Fragments      []Fragment

	Overlay *Overlay

	// Menu only.
	TitleColor int
	MenuLines  []string

	// Countdown is the remaining ticks of a timed phase, 0 otherwise.
	Countdown int
}

// Snapshot captures the current state. The result shares nothing with the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           g.tick,
		Phase:          g.phase.Kind(),
		Grid:           g.grid,
		LinesRemaining: g.progress.LinesRemaining,
		StageLabel:     g.progress.Label(),
		TitleColor:     g.titleColor,
	}

	switch p := g.phase.(type) {
	case MenuPhase:
		s.MenuLines = menuLines(g.progress.Label())
	case StageIntroPhase:
		s.Countdown = p.Ticks
		s.Overlay = &Overlay{Text: "Level " + s.StageLabel}
	case PlayingPhase:
		s.Piece = g.pieceView()
	case RowClearPhase:
		s.Fragments = append([]Fragment(nil), p.Fragments...)
		s.Overlay = &Overlay{Text: CaptionFor(p.Rows), Index: p.Rows - 1, Y: p.CaptionY, Color: g.captionColor}
	case LevelCompletePhase:
		s.Countdown = p.Ticks
		s.Overlay = &Overlay{Text: "GOAL!", Index: p.Index}
	case GameOverPhase:
		s.Countdown = p.Ticks
		s.Piece = g.pieceView()
		s.Overlay = &Overlay{Text: ":("}
	}
	return s
}

func (g *Game) pieceView() *PieceView {
	p := g.ctl.Piece
	v := &PieceView{
		Type:     p.Type,
		Rotation: p.Rotation,
		X:        int(p.X),
		Y:        int(p.Y),
		XLag:     p.XLag,
		Rotated:  p.ShowRotated,
		Pivot:    p.Type.Pivot(),
		Cells:    p.Shape(),
	}
	if v.Rotated {
		v.Angle = RotatedAngle
	}
	return v
}

func menuLines(stage string) []string {
	return []string{
		"LEFT and RIGHT to move.",
		"UP to rotate.",
		"DOWN to drop.",
		"Select level (UP/DOWN):",
		stage,
		"ENTER to start.",
	}
}
