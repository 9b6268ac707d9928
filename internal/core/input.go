package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows games to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
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

// InputFrame represents the input state for a single simulation tick.
// Besides discrete actions it carries the most recent tracker reading:
// a horizontal pointer coordinate within a frame of known width. The
// pointer is the platform's stand-in for the camera hand position the
// game was originally driven by; when tracking is lost there is simply
// no pointer for that frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerX is the horizontal pointer coordinate in [0, FrameW).
	// Only meaningful when HasPointer is true.
	PointerX int

	// FrameW is the width of the pointer's coordinate frame.
	FrameW int

	// HasPointer reports whether a pointer reading exists this frame.
	HasPointer bool
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

// SetPointer records a pointer reading for this frame.
func (f *InputFrame) SetPointer(x, frameW int) {
	f.PointerX = x
	f.FrameW = frameW
	f.HasPointer = true
}

// ClearPointer removes the pointer reading (tracking lost).
func (f *InputFrame) ClearPointer() {
	f.PointerX = 0
	f.FrameW = 0
	f.HasPointer = false
}

// Clear resets all actions for the next frame. The pointer reading is
// kept: it is a sampled state, not an edge-triggered event.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
