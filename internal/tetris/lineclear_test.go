package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(g *Grid, row int, c Cell) {
	for col := 0; col < Cols; col++ {
		g.Set(row, col, c)
	}
}

func TestRemoveSingleRow(t *testing.T) {
	var g Grid
	fillRow(&g, 19, CellOf(PieceS))
	g.Set(18, 0, CellOf(PieceT))
	lines := 25

	res := RemoveCompleteRows(&g, &lines, rand.New(rand.NewSource(1)))

	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, 24, lines)
	assert.Equal(t, "SINGLE!", res.Caption())
	assert.Equal(t, 19*BlockSize-BlockSize/2, res.CaptionY)
	assert.Equal(t, CellOf(PieceT), g.Get(19, 0), "row above shifted down")
	assert.Equal(t, 1, g.FilledCount())

	require.Len(t, res.Fragments, Cols)
	for col, f := range res.Fragments {
		assert.Equal(t, float64(col*BlockSize), f.X)
		assert.Equal(t, float64(19*BlockSize), f.Y)
		assert.Equal(t, CellOf(PieceS), f.Type)
		assert.GreaterOrEqual(t, f.VX, -2.5)
		assert.Less(t, f.VX, 2.5)
		assert.LessOrEqual(t, f.VY, -10.0)
		assert.Greater(t, f.VY, -12.0)
	}
}

func TestRemoveFourRows(t *testing.T) {
	var g Grid
	for row := 16; row < Rows; row++ {
		fillRow(&g, row, CellOf(PieceI))
	}
	lines := 25

	res := RemoveCompleteRows(&g, &lines, rand.New(rand.NewSource(1)))

	assert.Equal(t, 4, res.Rows)
	assert.Equal(t, 21, lines)
	assert.Equal(t, "TETЯIS!!!!", res.Caption())
	// Every full row is found at index 19 after the shift before it.
	assert.Equal(t, 19*BlockSize-12, res.CaptionY)
	assert.Len(t, res.Fragments, 4*Cols)
	assert.Zero(t, g.FilledCount())
}

func TestRemoveSplitRows(t *testing.T) {
	var g Grid
	fillRow(&g, 19, CellOf(PieceJ))
	fillRow(&g, 17, CellOf(PieceL))
	g.Set(18, 3, CellOf(PieceO))
	lines := 25

	res := RemoveCompleteRows(&g, &lines, rand.New(rand.NewSource(1)))

	assert.Equal(t, 2, res.Rows)
	// Row 17 is found at index 18 after the first shift.
	assert.Equal(t, (19+18)*BlockSize/2-12, res.CaptionY)
	assert.Equal(t, CellOf(PieceO), g.Get(19, 3))
	assert.Equal(t, 1, g.FilledCount())
	assert.Equal(t, CellOf(PieceJ), res.Fragments[0].Type)
	assert.Equal(t, CellOf(PieceL), res.Fragments[Cols].Type)
}

func TestRemoveNothing(t *testing.T) {
	var g Grid
	g.Set(19, 0, CellOf(PieceZ))
	lines := 3

	res := RemoveCompleteRows(&g, &lines, rand.New(rand.NewSource(1)))

	assert.Zero(t, res.Rows)
	assert.Empty(t, res.Fragments)
	assert.Equal(t, "", res.Caption())
	assert.Equal(t, 3, lines)
}

func TestLinesRemainingFloor(t *testing.T) {
	var g Grid
	fillRow(&g, 18, CellOf(PieceT))
	fillRow(&g, 19, CellOf(PieceT))
	lines := 1

	res := RemoveCompleteRows(&g, &lines, rand.New(rand.NewSource(1)))

	assert.Equal(t, 2, res.Rows)
	assert.Zero(t, lines)
}

func TestCaptionFor(t *testing.T) {
	assert.Equal(t, "", CaptionFor(0))
	assert.Equal(t, "SINGLE!", CaptionFor(1))
	assert.Equal(t, "DOUBLE!!", CaptionFor(2))
	assert.Equal(t, "TRIPLE!!!", CaptionFor(3))
	assert.Equal(t, "TETЯIS!!!!", CaptionFor(4))
}

func TestFragmentUpdate(t *testing.T) {
	f := Fragment{X: 10, Y: 100, VX: 1.5, VY: -10}
	f.Update()

	assert.InDelta(t, -9.8, f.VY, 1e-9)
	assert.InDelta(t, 11.5, f.X, 1e-9)
	assert.InDelta(t, 90.2, f.Y, 1e-9)
}

func TestUpdateFragmentsRemovesOffscreen(t *testing.T) {
	frags := []Fragment{
		{X: 100, Y: 100, Type: 1},
		{X: 239, Y: 100, VX: 2, Type: 2},
		{X: 100, Y: 100, Type: 3},
		{X: -23, Y: 100, VX: -2, Type: 4},
		{X: 100, Y: 480, Type: 5},
		{X: 100, Y: -300, VY: -5, Type: 6},
	}

	got := UpdateFragments(frags)

	var types []Cell
	for _, f := range got {
		types = append(types, f.Type)
	}
	assert.Equal(t, []Cell{1, 3, 6}, types, "order preserved, off-board removed, above board kept")
}

func TestFragmentsEventuallyLeave(t *testing.T) {
	var g Grid
	fillRow(&g, 19, CellOf(PieceS))
	lines := 25
	frags := RemoveCompleteRows(&g, &lines, rand.New(rand.NewSource(5))).Fragments

	ticks := 0
	for len(frags) > 0 && ticks < 1000 {
		frags = UpdateFragments(frags)
		ticks++
	}
	assert.Empty(t, frags)
	assert.Greater(t, ticks, 1)
}
