package racer

// DefaultLane is the lane used when no pointer signal is available.
const DefaultLane = 1

// LaneForX maps a horizontal pointer coordinate within a frame of the
// given width to a lane index. The frame is divided into three equal
// contiguous thirds. The function is pure and total: coordinates outside
// the frame clamp to the outer lanes, and a degenerate frame width yields
// the center lane.
func LaneForX(x, frameW int) int {
	if frameW <= 0 {
		return DefaultLane
	}
	third := float64(frameW) / LaneCount
	switch {
	case float64(x) < third:
		return 0
	case float64(x) < 2*third:
		return 1
	default:
		return 2
	}
}
