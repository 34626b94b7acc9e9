package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Board layout on the screen buffer. One block is one row and cellWidth columns.
const (
	hudRows    = 1 // "Remaining" line above the board
	boardTop   = hudRows + 1
	boardLeft  = 1
	panelGap   = 2
	panelWidth = 16
)

const (
	runeBlock    = '█'
	runeRotated  = '▒'
	runeFragment = '▓'
)

// pieceColors is the block color for each piece type.
var pieceColors = [tetris.PieceCount]core.Color{
	tetris.PieceI: core.ColorCyan,
	tetris.PieceJ: core.ColorBlue,
	tetris.PieceL: core.ColorOrange,
	tetris.PieceO: core.ColorYellow,
	tetris.PieceS: core.ColorBrightGreen,
	tetris.PieceT: core.ColorPurple,
	tetris.PieceZ: core.ColorRed,
}

// PieceColor returns the display color of a piece type.
func PieceColor(t tetris.PieceType) core.Color {
	if int(t) < len(pieceColors) {
		return pieceColors[t]
	}
	return core.ColorWhite
}

// cellColor returns the display color of a grid or fragment cell.
func cellColor(c tetris.Cell) core.Color {
	if t, ok := c.Piece(); ok {
		return PieceColor(t)
	}
	return core.ColorDefault
}

// Renderer draws snapshots into a screen buffer.
type Renderer struct {
	cellWidth int
}

// NewRenderer creates a renderer that draws each block cellWidth columns wide.
func NewRenderer(cellWidth int) *Renderer {
	return &Renderer{cellWidth: max(1, cellWidth)}
}

// Size returns the screen size the renderer needs.
func (r *Renderer) Size() (w, h int) {
	return r.board().Right() + panelGap + panelWidth, boardTop + tetris.Rows + 1
}

// board returns the box around the playfield.
func (r *Renderer) board() core.Rect {
	return core.NewRect(boardLeft-1, boardTop-1, tetris.Cols*r.cellWidth+2, tetris.Rows+2)
}

// column maps a board pixel x to a screen column.
func (r *Renderer) column(px int) int {
	return boardLeft + floorDiv(px*r.cellWidth, tetris.BlockSize)
}

// row maps a board pixel y to a screen row; rows above the board are negative.
func row(py int) int {
	return boardTop + floorDiv(py, tetris.BlockSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Draw renders one frame.
func (r *Renderer) Draw(scr *core.Screen, s tetris.Snapshot) {
	scr.Clear()

	if s.Phase == tetris.PhaseMenu {
		r.drawMenu(scr, s)
		return
	}

	scr.DrawText(boardLeft, 0, fmt.Sprintf("Remaining: %d", s.LinesRemaining), core.ColorBrightWhite)
	scr.DrawBox(r.board(), core.ColorGray)
	r.drawGrid(scr, &s.Grid)

	if s.Piece != nil {
		r.drawPiece(scr, s.Piece)
	}
	for _, f := range s.Fragments {
		r.drawBlock(scr, int(f.X), int(f.Y), runeFragment, cellColor(f.Type))
	}
	if s.Overlay != nil {
		r.drawOverlay(scr, s)
	}
	r.drawPanel(scr, s)
}

func (r *Renderer) drawGrid(scr *core.Screen, g *tetris.Grid) {
	for y := 0; y < tetris.Rows; y++ {
		for x := 0; x < tetris.Cols; x++ {
			c := g.Get(y, x)
			if c == tetris.Empty {
				continue
			}
			r.drawBlock(scr, x*tetris.BlockSize, y*tetris.BlockSize, runeBlock, cellColor(c))
		}
	}
}

// drawPiece draws the active piece. Terminals cannot turn a piece by 45
// degrees, so the rotation tick is shown with a shaded rune instead.
func (r *Renderer) drawPiece(scr *core.Screen, p *tetris.PieceView) {
	ch := runeBlock
	if p.Rotated {
		ch = runeRotated
	}
	for _, b := range p.Blocks() {
		r.drawBlock(scr, b.X, b.Y, ch, PieceColor(p.Type))
	}
}

// drawBlock fills the block whose top-left pixel is (px, py), clipped to the board.
func (r *Renderer) drawBlock(scr *core.Screen, px, py int, ch rune, c core.Color) {
	y := row(py)
	inner := r.board().Inset(1)
	x0 := r.column(px)
	for x := x0; x < x0+r.cellWidth; x++ {
		if inner.Contains(x, y) {
			scr.SetColored(x, y, ch, c)
		}
	}
}

func (r *Renderer) drawOverlay(scr *core.Screen, s tetris.Snapshot) {
	o := s.Overlay
	inner := r.board().Inset(1)
	mid := inner.Y + inner.H/2

	switch s.Phase {
	case tetris.PhaseRowClear:
		y := core.Clamp(row(o.Y), inner.Y, inner.Bottom()-1)
		scr.DrawTextCentered(inner.X, inner.W, y, o.Text, core.WheelColor(o.Color))
	case tetris.PhaseLevelComplete:
		// The caption pulses with the animation index.
		c := core.ColorBrightWhite
		if o.Index >= tetris.LevelCompleteCycle/2 {
			c = core.ColorWhite
		}
		scr.DrawTextCentered(inner.X, inner.W, mid, o.Text, c)
	default:
		scr.DrawTextCentered(inner.X, inner.W, mid, o.Text, core.ColorBrightWhite)
	}
}

func (r *Renderer) drawPanel(scr *core.Screen, s tetris.Snapshot) {
	x := r.board().Right() + panelGap
	scr.DrawText(x, boardTop, "TETЯIS", core.WheelColor(s.TitleColor))
	scr.DrawText(x, boardTop+2, "Level "+s.StageLabel, core.ColorWhite)
	scr.DrawText(x, boardTop+3, fmt.Sprintf("Lines %d", s.LinesRemaining), core.ColorWhite)
	if s.Countdown > 0 {
		scr.DrawText(x, boardTop+5, fmt.Sprintf("%s %d", s.Phase, s.Countdown), core.ColorGray)
	}
}

// drawMenu lays out the title and menu lines the way the board would: title
// near the top, the three control lines, then the stage selector and start hint.
func (r *Renderer) drawMenu(scr *core.Screen, s tetris.Snapshot) {
	w, _ := r.Size()
	scr.DrawTextCentered(0, w, 3, "TETЯIS", core.WheelColor(s.TitleColor))

	y := 7
	for i, line := range s.MenuLines {
		c := core.ColorWhite
		if i == tetris.MenuStageLine {
			c = core.ColorYellow
		}
		scr.DrawTextCentered(0, w, y, line, c)
		y++
		if i == 2 || i == tetris.MenuStageLine {
			y += 2
		}
	}
}
