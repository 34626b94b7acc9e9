package tetris

import "math/rand"

// Board geometry in cells and pixels.
const (
	Rows      = 20
	Cols      = 10
	BlockSize = 24

	BoardWidth  = Cols * BlockSize // 240
	BoardHeight = Rows * BlockSize // 480

	// blockInset keeps the far corner checks one pixel inside the block so that
	// a block sitting exactly on a cell boundary does not touch its neighbour.
	blockInset = 1
)

// Cell is a single grid cell: Empty or the tag of the piece that was locked there.
type Cell uint8

// Empty is the zero value so a fresh Grid is clear.
const Empty Cell = 0

// CellOf returns the cell tag for a piece type.
func CellOf(t PieceType) Cell {
	return Cell(t) + 1
}

// Piece returns the piece type stored in the cell and false for Empty.
func (c Cell) Piece() (PieceType, bool) {
	if c == Empty {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Grid is the 20x10 playfield. Row 0 is the top row.
type Grid [Rows][Cols]Cell

// Clear empties every cell.
func (g *Grid) Clear() {
	*g = Grid{}
}

// Get returns the cell at (row, col). Out-of-range lookups return Empty.
func (g *Grid) Get(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Empty
	}
	return g[row][col]
}

// Set writes the cell at (row, col). Out-of-range writes are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return
	}
	g[row][col] = c
}

// IsOccupied reports whether the pixel (px, py) is blocked.
// Left, right and bottom out-of-bounds count as occupied; anything above the
// top edge is free so pieces may hover above the board.
func (g *Grid) IsOccupied(px, py int) bool {
	if px < 0 || px >= BoardWidth || py >= BoardHeight {
		return true
	}
	if py < 0 {
		return false
	}
	return g[py/BlockSize][px/BlockSize] != Empty
}

// IsBlockOccupied checks the four corners of the 24x24 block whose top-left
// pixel is (px, py).
func (g *Grid) IsBlockOccupied(px, py int) bool {
	far := BlockSize - blockInset
	return g.IsOccupied(px, py) ||
		g.IsOccupied(px, py+far) ||
		g.IsOccupied(px+far, py) ||
		g.IsOccupied(px+far, py+far)
}

// Collides reports whether any block of shape placed at (px, py) is occupied.
func (g *Grid) Collides(shape Shape, px, py int) bool {
	for _, o := range shape {
		if g.IsBlockOccupied(px+o.X, py+o.Y) {
			return true
		}
	}
	return false
}

// LockCells writes the piece's four blocks into the grid.
func (g *Grid) LockCells(px, py int, shape Shape, t PieceType) {
	for _, o := range shape {
		g.Set((py+o.Y)/BlockSize, (px+o.X)/BlockSize, CellOf(t))
	}
}

// InitWithJunk empties the grid and fills the bottom junkRows rows with random
// cells. Every row then gets two random columns cleared.
func (g *Grid) InitWithJunk(junkRows int, rng *rand.Rand) {
	junkRow := Rows - junkRows
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if row < junkRow {
				g[row][col] = Empty
				continue
			}
			// Intn(8) covers the seven pieces plus Empty.
			if v := rng.Intn(PieceCount + 1); v < PieceCount {
				g[row][col] = CellOf(PieceType(v))
			} else {
				g[row][col] = Empty
			}
		}
		g[row][rng.Intn(Cols)] = Empty
		g[row][rng.Intn(Cols)] = Empty
	}
}

// RowFull reports whether every cell in row is non-empty.
func (g *Grid) RowFull(row int) bool {
	for col := 0; col < Cols; col++ {
		if g[row][col] == Empty {
			return false
		}
	}
	return true
}

// FilledCount returns the number of non-empty cells.
func (g Grid) FilledCount() int {
	n := 0
	for row := range g {
		for _, c := range g[row] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
