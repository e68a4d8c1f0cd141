package core

// Action represents a discrete game action, abstracted from physical key presses.
// Movement is not an action: it is held state, see HeldInput.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Space - start a new game from intro or game over
	ActionPause          // P - pause/unpause while playing
	ActionRestart        // R - restart at any time
	ActionQuit           // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the discrete actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Direction is one of the four movement controls.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Directions lists all movement directions in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// HeldInput is the set of movement controls currently held down.
// Press and Release are edge events; the flags persist across ticks
// until the matching release, and are read once per tick via Delta.
type HeldInput struct {
	held [4]bool
}

// Press marks a direction as held.
func (h *HeldInput) Press(d Direction) {
	if d < DirUp || d > DirRight {
		return
	}
	h.held[d] = true
}

// Release marks a direction as no longer held.
func (h *HeldInput) Release(d Direction) {
	if d < DirUp || d > DirRight {
		return
	}
	h.held[d] = false
}

// ReleaseAll clears every held direction.
func (h *HeldInput) ReleaseAll() {
	h.held = [4]bool{}
}

// IsHeld reports whether a direction is currently held.
func (h HeldInput) IsHeld(d Direction) bool {
	if d < DirUp || d > DirRight {
		return false
	}
	return h.held[d]
}

// Delta returns the displacement for one tick at the given speed.
// Opposite directions cancel out. Diagonals are the plain vector sum and
// are not normalized, so diagonal movement covers more distance per tick.
func (h HeldInput) Delta(speed int) (dx, dy int) {
	if h.held[DirLeft] {
		dx -= speed
	}
	if h.held[DirRight] {
		dx += speed
	}
	if h.held[DirUp] {
		dy -= speed
	}
	if h.held[DirDown] {
		dy += speed
	}
	return dx, dy
}
