package tetris

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Timing constants, in ticks.
const (
	LockDownDelay    = 15 // ticks a resting piece may slide before it locks
	RotateDelay      = 15 // repeat delay after a rotation
	SideMoveDelay    = 6  // initial lateral repeat delay
	fastSideDelay    = 3  // first accelerated lateral delay
	MenuRepeatDelay  = 6  // stage selector repeat delay
	lateralLagPixels = 12 // visual nudge after a successful lateral move
)

// ActivePiece is the falling piece.
type ActivePiece struct {
	Type     PieceType
	Rotation int
	X        float64 // always a whole number of pixels
	Y        float64 // fractional while falling slower than a pixel per tick

	// XLag is a one-tick horizontal draw offset applied after a lateral move.
	XLag int
	// ShowRotated is set for the tick in which a rotation succeeded.
	ShowRotated bool
}

// Shape returns the offsets of the current rotation.
func (p ActivePiece) Shape() Shape {
	return p.Type.Shape(p.Rotation)
}

// Outcome is the result of advancing the active piece by one tick.
type Outcome int

const (
	OutcomeFalling Outcome = iota // still in play
	OutcomeLocked                 // written into the grid
	OutcomeTopOut                 // came to rest above the board
)

// keyRepeat throttles held inputs. The menu shares the same counter.
type keyRepeat struct {
	delay     int
	sideDelay int
	lastLeft  bool
	lastRight bool
}

func newKeyRepeat() keyRepeat {
	return keyRepeat{sideDelay: SideMoveDelay}
}

// release applies key-up resets so a re-press triggers immediately.
func (k *keyRepeat) release(in, prev core.Input) {
	if in.Released(prev, core.KeyLeft) || in.Released(prev, core.KeyRight) {
		k.sideDelay = SideMoveDelay
		k.delay = 0
	}
	if in.Released(prev, core.KeyUp) || in.Released(prev, core.KeyDown) {
		k.delay = 0
	}
}

// accelerate shortens the lateral delay while the same direction stays held:
// 6, 3, 2, 1, 1, ...
func (k *keyRepeat) accelerate(heldLastTick bool) {
	if heldLastTick && k.sideDelay > 1 {
		if k.sideDelay == SideMoveDelay {
			k.sideDelay = fastSideDelay
		} else {
			k.sideDelay--
		}
	}
	k.delay = k.sideDelay
}

// Controller moves the active piece: gravity, lock-down, rotation with kicks
// and lateral movement.
type Controller struct {
	Piece    ActivePiece
	lockDown int
	repeat   keyRepeat
}

// NewController returns a controller with no piece and fresh counters.
func NewController() *Controller {
	return &Controller{repeat: newKeyRepeat()}
}

// Spawn replaces the active piece with a new one of type t at its spawn point.
// The lock-down counter carries over, so a piece spawned onto an obstruction
// locks on its first tick.
func (c *Controller) Spawn(t PieceType) {
	x, y := SpawnPosition(t)
	c.Piece = ActivePiece{Type: t, X: x, Y: y}
}

// LockDown returns the remaining lock-down grace ticks.
func (c *Controller) LockDown() int {
	return c.lockDown
}

// Speeds are the per-tick gravity in pixels.
type Speeds struct {
	Normal float64
	Fast   float64
}

// SpeedsForStage derives gravity from the stage index.
func SpeedsForStage(stage int) Speeds {
	normal := float64(stage+1) / 4.0
	return Speeds{Normal: normal, Fast: math.Max(16, normal)}
}

// landedY snaps a blocked candidate y up to the nearest block boundary.
func landedY(nextY float64) int {
	return ((int(math.Ceil(nextY))+BlockSize-1)/BlockSize - 1) * BlockSize
}

// Advance runs one Playing tick against grid. When the piece locks its cells
// are already written to grid; the caller handles line clears and the next spawn.
func (c *Controller) Advance(grid *Grid, in core.Input, speeds Speeds) Outcome {
	p := &c.Piece
	p.XLag = 0

	speed := speeds.Normal
	if in.Down {
		speed = speeds.Fast
	}

	px := int(p.X)
	py := int(p.Y)
	nextY := p.Y + speed
	shape := p.Shape()

	falling := true
	for _, o := range shape {
		if !grid.IsBlockOccupied(px+o.X, int(math.Ceil(nextY+float64(o.Y)))) {
			continue
		}
		py = landedY(nextY)
		p.Y = float64(py)
		falling = false
		if c.lockDown == 0 {
			if py < 0 {
				return OutcomeTopOut
			}
			c.repeat.delay = 0
			grid.LockCells(px, py, shape, p.Type)
			return OutcomeLocked
		}
		c.lockDown--
		break
	}
	if falling {
		c.lockDown = LockDownDelay
		p.Y = nextY
	}

	c.handleInput(grid, in, px, py)
	return OutcomeFalling
}

// handleInput processes at most one of rotate, left, right. px and py are the
// integer position the tick started from (or the landed y).
func (c *Controller) handleInput(grid *Grid, in core.Input, px, py int) {
	r := &c.repeat
	if r.delay == 0 {
		switch {
		case in.Up:
			r.delay = RotateDelay
			c.Rotate(grid, px, py)
		case in.Left:
			r.accelerate(r.lastLeft)
			c.shift(grid, px, py, -BlockSize, lateralLagPixels)
		case in.Right:
			r.accelerate(r.lastRight)
			c.shift(grid, px, py, BlockSize, -lateralLagPixels)
		}
	} else {
		r.delay--
	}

	r.lastLeft = in.Left
	r.lastRight = in.Right
}

// KickOffsets returns the horizontal offsets tried, in order, when rotating t.
func KickOffsets(t PieceType) []int {
	if t == PieceI {
		return []int{0, -BlockSize, BlockSize, -2 * BlockSize, 2 * BlockSize}
	}
	return []int{0, -BlockSize, BlockSize}
}

// Rotate tries the next rotation state at each kick offset and keeps the first
// that fits. It reports whether the rotation happened; on failure nothing changes.
func (c *Controller) Rotate(grid *Grid, px, py int) bool {
	p := &c.Piece
	next := (p.Rotation + 1) % 4
	shape := p.Type.Shape(next)
	for _, dx := range KickOffsets(p.Type) {
		if grid.Collides(shape, px+dx, py) {
			continue
		}
		p.X = float64(px + dx)
		p.Rotation = next
		p.ShowRotated = true
		return true
	}
	return false
}

// shift moves the piece one block sideways. A blocked move leaves x unchanged
// and clears the lag.
func (c *Controller) shift(grid *Grid, px, py, dx, lag int) {
	p := &c.Piece
	if grid.Collides(p.Shape(), px+dx, py) {
		p.X = float64(px)
		p.XLag = 0
		return
	}
	p.X = float64(px + dx)
	p.XLag = lag
}
