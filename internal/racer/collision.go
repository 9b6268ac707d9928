package racer

import (
	"github.com/dkharms/roadrush/internal/core"
)

// Sweep resolves the tick's collisions and off-screen exits in a single
// pass. Obstacles overlapping the player are returned as collisions; of
// the rest, those past the bottom edge are counted as passed. An obstacle
// that both overlaps the player and has crossed the bottom in the same
// tick counts as a collision, not a pass. Marked obstacles are removed by
// filtering, so multiple removals in one tick cannot skip elements, and a
// sweep with nothing overlapping or past the boundary leaves the
// collection untouched.
func (om *ObstacleManager) Sweep(player core.Rect) (collided []Obstacle, passed int) {
	remaining := om.obstacles[:0]
	for _, o := range om.obstacles {
		switch {
		case player.Intersects(o.Rect(om.layout)):
			collided = append(collided, o)
		case o.Y > om.layout.H:
			passed++
		default:
			remaining = append(remaining, o)
		}
	}
	om.obstacles = remaining
	return collided, passed
}
