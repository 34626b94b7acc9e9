package core

// Key is one of the five logical inputs the engine consumes.
// Physical key bindings are the platform's concern.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp      // rotate, menu stage up
	KeyDown    // fast drop, menu stage down
	KeyConfirm // start from the menu
)

// Keys lists every logical key in a stable order.
var Keys = [...]Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyConfirm}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// Input is the held/released state of every logical key during one tick.
// A flag is true from key-down until key-up.
type Input struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Confirm bool
}

// Pressed returns true if k is held.
func (in Input) Pressed(k Key) bool {
	switch k {
	case KeyLeft:
		return in.Left
	case KeyRight:
		return in.Right
	case KeyUp:
		return in.Up
	case KeyDown:
		return in.Down
	case KeyConfirm:
		return in.Confirm
	}
	return false
}

// Set updates the held state of k.
func (in *Input) Set(k Key, held bool) {
	switch k {
	case KeyLeft:
		in.Left = held
	case KeyRight:
		in.Right = held
	case KeyUp:
		in.Up = held
	case KeyDown:
		in.Down = held
	case KeyConfirm:
		in.Confirm = held
	}
}

// Released returns true if k was held in prev and is not held now.
func (in Input) Released(prev Input, k Key) bool {
	return prev.Pressed(k) && !in.Pressed(k)
}

// Any returns true if at least one key is held.
func (in Input) Any() bool {
	return in.Left || in.Right || in.Up || in.Down || in.Confirm
}
