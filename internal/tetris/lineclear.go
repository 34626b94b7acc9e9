package tetris

import "math/rand"

// Fragment physics, in pixels per tick.
const (
	fragmentGravity = 0.2
	fragmentSpreadX = 5.0 // horizontal velocity spans [-2.5, 2.5)
	fragmentLaunchY = -10.0
	fragmentSpreadY = 2.0 // vertical velocity spans (-12, -10]
)

// Fragment is a cell knocked loose by a row clear. Purely cosmetic.
type Fragment struct {
	X, Y   float64
	VX, VY float64
	Type   Cell
}

// Update integrates one tick of ballistic motion.
func (f *Fragment) Update() {
	f.VY += fragmentGravity
	f.X += f.VX
	f.Y += f.VY
}

// Visible reports whether the fragment is still inside the drawable area.
// Fragments may rise above the top edge and come back down.
func (f *Fragment) Visible() bool {
	return f.X <= BoardWidth && f.X >= -BlockSize && f.Y <= BoardHeight
}

// UpdateFragments advances every fragment and drops those that left the board.
// Order is preserved.
func UpdateFragments(frags []Fragment) []Fragment {
	kept := frags[:0]
	for i := range frags {
		f := frags[i]
		f.Update()
		if f.Visible() {
			kept = append(kept, f)
		}
	}
	return kept
}

// ClearResult describes the rows removed by one lock.
type ClearResult struct {
	Rows      int
	Fragments []Fragment
	// CaptionY is the pixel row the clear caption starts at: the mean top edge
	// of the cleared rows, raised by half a block.
	CaptionY int
}

// Captions indexed by cleared rows minus one.
var clearCaptions = [...]string{"SINGLE!", "DOUBLE!!", "TRIPLE!!!", "TETЯIS!!!!"}

// Caption returns the celebration text for the clear, or "" when nothing cleared.
func (r ClearResult) Caption() string {
	return CaptionFor(r.Rows)
}

// CaptionFor returns the celebration text for n cleared rows.
func CaptionFor(n int) string {
	if n <= 0 {
		return ""
	}
	return clearCaptions[min(n, len(clearCaptions))-1]
}

// RemoveCompleteRows scans the grid bottom-up, removes every full row, shifts
// the rows above down and spawns one fragment per removed cell. linesRemaining
// is decremented per row and never goes below zero.
func RemoveCompleteRows(g *Grid, linesRemaining *int, rng *rand.Rand) ClearResult {
	var res ClearResult
	totalY := 0
	for row := Rows - 1; row >= 0; row-- {
		if !g.RowFull(row) {
			continue
		}
		if *linesRemaining > 0 {
			*linesRemaining--
		}
		res.Rows++
		totalY += row * BlockSize
		for col := 0; col < Cols; col++ {
			res.Fragments = append(res.Fragments, Fragment{
				X:    float64(col * BlockSize),
				Y:    float64(row * BlockSize),
				VX:   (rng.Float64() - 0.5) * fragmentSpreadX,
				VY:   fragmentLaunchY - fragmentSpreadY*rng.Float64(),
				Type: g[row][col],
			})
		}
		for k := row; k > 0; k-- {
			g[k] = g[k-1]
		}
		g[0] = [Cols]Cell{}
		// The row that slid into this index has not been checked yet.
		row++
	}
	if res.Rows > 0 {
		res.CaptionY = totalY/res.Rows - BlockSize/2
	}
	return res
}
