package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newFrame(cellWidth int) (*Renderer, *core.Screen) {
	r := NewRenderer(cellWidth)
	w, h := r.Size()
	return r, core.NewScreen(w, h)
}

func TestRendererSize(t *testing.T) {
	r := NewRenderer(2)
	w, h := r.Size()
	assert.Equal(t, 20+2+panelGap+panelWidth, w)
	assert.Equal(t, 40, w)
	assert.Equal(t, boardTop+tetris.Rows+1, h)
	// The panel ends on the last column.
	assert.Equal(t, w, r.board().Right()+panelGap+panelWidth)
}

func TestDrawMenu(t *testing.T) {
	r, scr := newFrame(2)
	g := tetris.New()
	r.Draw(scr, g.Snapshot())

	out := scr.String()
	assert.Contains(t, out, "TETЯIS")
	assert.Contains(t, out, "Select level (UP/DOWN):")
	assert.Contains(t, out, "ENTER to start.")

	// The stage label is highlighted.
	found := false
	for y := 0; y < scr.Height(); y++ {
		if strings.TrimSpace(scr.Row(y)) == "1-1" {
			x := strings.Index(scr.Row(y), "1")
			assert.Equal(t, core.ColorYellow, scr.GetCell(x, y).Color)
			found = true
		}
	}
	assert.True(t, found, "stage label row")
}

func TestDrawGridBlocks(t *testing.T) {
	r, scr := newFrame(2)
	s := tetris.Snapshot{Phase: tetris.PhasePlaying, LinesRemaining: 25}
	s.Grid.Set(19, 0, tetris.CellOf(tetris.PieceT))
	s.Grid.Set(0, 9, tetris.CellOf(tetris.PieceI))

	r.Draw(scr, s)

	bottom := boardTop + 19
	assert.Equal(t, runeBlock, scr.Get(boardLeft, bottom))
	assert.Equal(t, runeBlock, scr.Get(boardLeft+1, bottom))
	assert.Equal(t, core.ColorPurple, scr.GetCell(boardLeft, bottom).Color)
	assert.Equal(t, ' ', scr.Get(boardLeft+2, bottom))

	assert.Equal(t, runeBlock, scr.Get(boardLeft+18, boardTop))
	assert.Equal(t, core.ColorCyan, scr.GetCell(boardLeft+19, boardTop).Color)
	assert.Contains(t, scr.Row(0), "Remaining: 25")
}

func TestDrawPieceClipsAboveBoard(t *testing.T) {
	r, scr := newFrame(1)
	s := tetris.Snapshot{
		Phase: tetris.PhasePlaying,
		Piece: &tetris.PieceView{
			Type:  tetris.PieceO,
			X:     96,
			Y:     -24,
			Cells: tetris.PieceO.Shape(0),
		},
	}

	r.Draw(scr, s)

	// Only the lower half of the O is inside the board.
	assert.Equal(t, runeBlock, scr.Get(boardLeft+4, boardTop))
	assert.Equal(t, runeBlock, scr.Get(boardLeft+5, boardTop))
	assert.NotEqual(t, runeBlock, scr.Get(boardLeft+4, boardTop-1), "border row untouched")
}

func TestDrawRotatedPieceAndLag(t *testing.T) {
	r, scr := newFrame(2)
	s := tetris.Snapshot{
		Phase: tetris.PhasePlaying,
		Piece: &tetris.PieceView{
			Type:    tetris.PieceO,
			X:       0,
			Y:       0,
			XLag:    12,
			Rotated: true,
			Cells:   tetris.PieceO.Shape(0),
		},
	}

	r.Draw(scr, s)

	// Half a block of lag is one column at width 2.
	assert.Equal(t, ' ', scr.Get(boardLeft, boardTop))
	assert.Equal(t, runeRotated, scr.Get(boardLeft+1, boardTop))
	assert.Equal(t, core.ColorYellow, scr.GetCell(boardLeft+1, boardTop).Color)
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name  string
		snap  tetris.Snapshot
		text  string
		color core.Color
	}{
		{
			"stage intro",
			tetris.Snapshot{Phase: tetris.PhaseStageIntro, Overlay: &tetris.Overlay{Text: "Level 1-1"}},
			"Level 1-1", core.ColorBrightWhite,
		},
		{
			"game over",
			tetris.Snapshot{Phase: tetris.PhaseGameOver, Overlay: &tetris.Overlay{Text: ":("}},
			":(", core.ColorBrightWhite,
		},
		{
			"clear caption",
			tetris.Snapshot{Phase: tetris.PhaseRowClear, Overlay: &tetris.Overlay{Text: "DOUBLE!!", Y: 200, Color: 9}},
			"DOUBLE!!", core.WheelColor(9),
		},
		{
			"goal",
			tetris.Snapshot{Phase: tetris.PhaseLevelComplete, Overlay: &tetris.Overlay{Text: "GOAL!", Index: 20}},
			"GOAL!", core.ColorWhite,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, scr := newFrame(2)
			r.Draw(scr, tt.snap)

			var y, x = -1, -1
			for row := 0; row < scr.Height(); row++ {
				line := []rune(scr.Row(row))
				if i := strings.Index(string(line), tt.text); i >= 0 && row > 0 {
					y = row
					x = len([]rune(string(line)[:i]))
					break
				}
			}
			require.GreaterOrEqual(t, y, 0, "overlay text not found")
			assert.Equal(t, tt.color, scr.GetCell(x, y).Color)
		})
	}
}

func TestDrawFragments(t *testing.T) {
	r, scr := newFrame(2)
	s := tetris.Snapshot{
		Phase: tetris.PhaseRowClear,
		Fragments: []tetris.Fragment{
			{X: 48, Y: 240, Type: tetris.CellOf(tetris.PieceZ)},
			{X: 48, Y: -300, Type: tetris.CellOf(tetris.PieceZ)},
		},
	}

	r.Draw(scr, s)

	assert.Equal(t, runeFragment, scr.Get(boardLeft+4, boardTop+10))
	assert.Equal(t, core.ColorRed, scr.GetCell(boardLeft+4, boardTop+10).Color)
}

func TestWheelHex(t *testing.T) {
	for i := 0; i < core.WheelSize; i++ {
		hex := wheelHex(i)
		assert.True(t, strings.HasPrefix(hex, "#"), hex)
		assert.Len(t, hex, 7)
	}
	assert.NotEqual(t, wheelHex(0), wheelHex(32))
}

func TestStyleForWheelColors(t *testing.T) {
	for _, i := range []int{0, 17, core.WheelSize - 1} {
		fg := styleFor(core.WheelColor(i)).GetForeground()
		assert.Equal(t, lipgloss.Color(wheelHex(i)), fg, "step %d", i)
	}
	assert.Equal(t, lipgloss.Color("1"), styleFor(core.ColorRed).GetForeground())
	assert.Equal(t, lipgloss.NoColor{}, styleFor(core.Color(200)).GetForeground())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, -1, floorDiv(-1, 24))
	assert.Equal(t, -1, floorDiv(-24, 24))
	assert.Equal(t, -2, floorDiv(-25, 24))
	assert.Equal(t, 0, floorDiv(23, 24))
}
