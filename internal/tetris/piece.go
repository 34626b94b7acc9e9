package tetris

import "math"

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceCount is the number of distinct piece types.
const PieceCount = 7

// String returns the single-letter name of the piece.
func (p PieceType) String() string {
	if int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return "?"
}

var pieceNames = [PieceCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// Offset is a pixel offset from a piece's origin.
type Offset struct {
	X, Y int
}

// Shape is the four block offsets of one rotation state.
type Shape [4]Offset

type pieceDef struct {
	rotations [4]Shape
	pivot     Offset
}

// shapeCells holds rotation states in cell units; catalog scales them to pixels.
var shapeCells = [PieceCount][4][4][2]int{
	PieceI: {
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	PieceJ: {
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 0}},
	},
	PieceL: {
		{{1, 0}, {1, 1}, {1, 2}, {0, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
	},
	PieceO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	PieceS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceT: {
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
	},
	PieceZ: {
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
}

var pivots = [PieceCount]Offset{
	PieceI: {48, 48},
	PieceJ: {36, 36},
	PieceL: {36, 36},
	PieceO: {24, 24},
	PieceS: {36, 36},
	PieceT: {36, 36},
	PieceZ: {36, 36},
}

var catalog = buildCatalog()

func buildCatalog() [PieceCount]pieceDef {
	var defs [PieceCount]pieceDef
	for t := range shapeCells {
		for r := range shapeCells[t] {
			for i, c := range shapeCells[t][r] {
				defs[t].rotations[r][i] = Offset{X: c[0] * BlockSize, Y: c[1] * BlockSize}
			}
		}
		defs[t].pivot = pivots[t]
	}
	return defs
}

// Shape returns the pixel offsets of rotation state rot (taken modulo 4).
func (p PieceType) Shape(rot int) Shape {
	return catalog[p].rotations[rot&3]
}

// Rotations returns all four rotation states.
func (p PieceType) Rotations() [4]Shape {
	return catalog[p].rotations
}

// Pivot returns the pixel offset the renderer rotates the piece around.
func (p PieceType) Pivot() Offset {
	return catalog[p].pivot
}

// SpawnPosition returns the starting origin for a new piece: horizontally
// centred on a block boundary and vertically just above the visible board.
func SpawnPosition(p PieceType) (x, y float64) {
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := 0, 0
	for _, o := range p.Shape(0) {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
		maxX = max(maxX, o.X+BlockSize)
		maxY = max(maxY, o.Y+BlockSize)
	}
	dx := maxX - minX
	dy := maxY - minY
	// Halfway cases round to even, so the I piece spawns at x=48 rather than 72.
	x = math.RoundToEven(math.RoundToEven(float64(BoardWidth-dx)/48.0)*BlockSize - float64(minX))
	y = float64(-minY - dy)
	return x, y
}
