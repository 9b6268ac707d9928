package racer

import (
	"math/rand"

	"github.com/dkharms/roadrush/internal/config"
	"github.com/dkharms/roadrush/internal/core"
)

// Obstacle is an enemy car scrolling down the road. Obstacles are
// identity-free values: center-x is fixed at a lane center for the
// obstacle's whole life, only top-y changes.
type Obstacle struct {
	CX      float64 // Center x, equal to a lane center
	Y       float64 // Top edge, increases every tick
	Palette int     // Index into the fixed palette set
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect(l *Layout) core.Rect {
	return core.NewRect(o.CX-l.EnemyW/2, o.Y, l.EnemyW, l.EnemyH)
}

// ObstacleManager owns the obstacle collection: spawning, movement and
// retirement. Spawning is gated by a countdown that shortens as the score
// grows, floored at cfg.SpawnFloor ticks.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	layout    *Layout
	cfg       config.ObstaclesConfig
	countdown int
}

// NewObstacleManager creates an obstacle manager for the given layout.
// The gameplay RNG is assigned via Seed before use.
func NewObstacleManager(layout *Layout, cfg config.ObstaclesConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, cfg.MaxCount),
		layout:    layout,
		cfg:       cfg,
	}
	om.Reset()
	return om
}

// Seed installs the gameplay random source. Spawn lane, palette and
// interval jitter all draw from it, so a fixed seed yields a fixed
// spawn sequence.
func (om *ObstacleManager) Seed(rng *rand.Rand) {
	om.rng = rng
}

// Reset clears all obstacles and restores the initial spawn countdown.
// The random source is kept, so a session restart continues the stream.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
	om.countdown = om.cfg.SpawnBase
}

// interval returns the base spawn interval in ticks for the given score.
// Higher scores spawn faster, floored at SpawnFloor.
func (om *ObstacleManager) interval(score int) int {
	iv := om.cfg.SpawnBase - score/om.cfg.ScoreDivisor
	if iv < om.cfg.SpawnFloor {
		iv = om.cfg.SpawnFloor
	}
	return iv
}

// Tick decrements the spawn countdown and spawns a new obstacle when it
// is due. A spawn blocked by the obstacle cap is silently skipped; the
// countdown keeps counting down (negative values are valid) so the spawn
// fires on the next eligible tick.
func (om *ObstacleManager) Tick(score int) {
	om.countdown--
	if om.countdown > 0 || len(om.obstacles) >= om.cfg.MaxCount {
		return
	}

	lane := om.rng.Intn(LaneCount)
	pal := om.rng.Intn(len(palettes))
	om.obstacles = append(om.obstacles, Obstacle{
		CX:      om.layout.LaneX[lane],
		Y:       -om.layout.EnemyH, // Just above the visible area
		Palette: pal,
	})
	jitter := om.rng.Intn(2*om.cfg.SpawnJitter+1) - om.cfg.SpawnJitter
	om.countdown = om.interval(score) + jitter
}

// Advance moves every obstacle down by the current speed.
func (om *ObstacleManager) Advance(speed float64) {
	for i := range om.obstacles {
		om.obstacles[i].Y += speed
	}
}

// Obstacles returns the live obstacle collection.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Count returns the number of live obstacles.
func (om *ObstacleManager) Count() int {
	return len(om.obstacles)
}

// Countdown returns the current spawn countdown in ticks.
func (om *ObstacleManager) Countdown() int {
	return om.countdown
}
