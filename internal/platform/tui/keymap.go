package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkharms/roadrush/internal/core"
)

// TrackerOp is a virtual hand tracker manipulation derived from input.
type TrackerOp int

const (
	TrackerOpNone TrackerOp = iota
	TrackerOpLeft
	TrackerOpRight
	TrackerOpThird0
	TrackerOpThird1
	TrackerOpThird2
	TrackerOpToggleLost
)

// KeyMapper translates Bubble Tea key messages to game actions and
// tracker operations. This centralizes key bindings and makes them
// testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapTrackerKey translates a key message to a tracker operation.
func (km *KeyMapper) MapTrackerKey(msg tea.KeyMsg) TrackerOp {
	switch msg.String() {
	case "left", "h", "a":
		return TrackerOpLeft
	case "right", "l", "d":
		return TrackerOpRight
	case "1":
		return TrackerOpThird0
	case "2":
		return TrackerOpThird1
	case "3":
		return TrackerOpThird2
	case "x":
		return TrackerOpToggleLost
	}

	return TrackerOpNone
}

// ApplyTrackerOp applies a tracker operation to the given tracker.
func ApplyTrackerOp(t *HandTracker, op TrackerOp) {
	switch op {
	case TrackerOpLeft:
		t.MoveLeft()
	case TrackerOpRight:
		t.MoveRight()
	case TrackerOpThird0:
		t.SetThird(0)
	case TrackerOpThird1:
		t.SetThird(1)
	case TrackerOpThird2:
		t.SetThird(2)
	case TrackerOpToggleLost:
		t.ToggleLost()
	}
}
