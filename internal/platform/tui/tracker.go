package tui

import (
	"github.com/dkharms/roadrush/internal/core"
)

// Tracker frame defaults. The coordinate space mimics a small sensor
// frame; only the ratio of position to width matters to the game.
const (
	trackerFrameW = 240
	trackerStep   = 12
)

// HandTracker is the keyboard stand-in for the hand-tracking sensor the
// game is designed around. It maintains a pointer position inside a
// fixed-width frame; arrow keys nudge it, number keys jump it to a
// third, and tracking can be toggled "lost" to exercise the game's
// missing-signal behavior.
type HandTracker struct {
	x      int
	frameW int
	lost   bool
}

// NewHandTracker creates a tracker with the pointer centered.
func NewHandTracker() *HandTracker {
	return &HandTracker{
		x:      trackerFrameW / 2,
		frameW: trackerFrameW,
	}
}

// MoveLeft nudges the pointer left, clamped at the frame edge.
func (t *HandTracker) MoveLeft() {
	t.x = max(t.x-trackerStep, 0)
}

// MoveRight nudges the pointer right, clamped at the frame edge.
func (t *HandTracker) MoveRight() {
	t.x = min(t.x+trackerStep, t.frameW-1)
}

// SetThird jumps the pointer to the center of the given third.
func (t *HandTracker) SetThird(i int) {
	if i < 0 || i > 2 {
		return
	}
	t.x = t.frameW/6 + i*t.frameW/3
}

// ToggleLost flips the tracking-lost state.
func (t *HandTracker) ToggleLost() {
	t.lost = !t.lost
}

// Lost reports whether tracking is currently lost.
func (t *HandTracker) Lost() bool {
	return t.lost
}

// X returns the current pointer position.
func (t *HandTracker) X() int {
	return t.x
}

// FrameW returns the tracker's frame width.
func (t *HandTracker) FrameW() int {
	return t.frameW
}

// Apply writes the current reading into an input frame. A lost tracker
// clears the pointer so the game sees no signal at all.
func (t *HandTracker) Apply(frame *core.InputFrame) {
	if t.lost {
		frame.ClearPointer()
		return
	}
	frame.SetPointer(t.x, t.frameW)
}
