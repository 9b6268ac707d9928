// Package racer implements a lane-dodging arcade racer.
// The player car slides between three lanes on a scrolling road, dodging
// obstacle cars that spawn at the top. Lane choice is driven by a
// continuous horizontal pointer coordinate supplied by the platform.
package racer

import (
	"github.com/dkharms/roadrush/internal/config"
	"github.com/dkharms/roadrush/internal/core"
)

// LaneCount is the fixed number of lanes on the road.
const LaneCount = 3

// Palette is the two-tone color scheme of an obstacle car.
type Palette struct {
	Body core.RGB
	Trim core.RGB
}

// palettes is the fixed set of obstacle color schemes.
var palettes = [...]Palette{
	{Body: core.RGB{R: 220, G: 50, B: 50}, Trim: core.RGB{R: 140, G: 20, B: 20}},
	{Body: core.RGB{R: 255, G: 140, B: 0}, Trim: core.RGB{R: 180, G: 80, B: 0}},
	{Body: core.RGB{R: 160, G: 50, B: 220}, Trim: core.RGB{R: 100, G: 20, B: 150}},
	{Body: core.RGB{R: 50, G: 200, B: 100}, Trim: core.RGB{R: 20, G: 130, B: 50}},
	{Body: core.RGB{R: 200, G: 200, B: 50}, Trim: core.RGB{R: 130, G: 130, B: 10}},
}

// Explosion accent colors mixed into every particle burst.
var (
	accentWarmWhite = core.RGB{R: 255, G: 255, B: 200}
	accentAmber     = core.RGB{R: 255, G: 180, B: 0}
)

// Layout holds the static road geometry derived from config.
// All values are simulation pixels. Lanes are contiguous, equal-width
// corridors covering the road exactly.
type Layout struct {
	W, H float64 // Simulation space dimensions

	RoadL, RoadR float64 // Road edges
	RoadW        float64
	LaneW        float64
	LaneX        [LaneCount]float64 // Lane center x coordinates

	CarW, CarH     float64 // Player car size
	EnemyW, EnemyH float64 // Obstacle car size

	DashLen, DashGap float64 // Lane marker geometry

	PlayerY float64 // Fixed player top-y
}

// NewLayout computes the road layout from configuration.
func NewLayout(cfg *config.RacerConfig) Layout {
	l := Layout{
		W:       cfg.Road.Width,
		H:       cfg.Road.Height,
		RoadL:   cfg.Road.Left,
		RoadR:   cfg.Road.Right,
		CarW:    cfg.Player.Width,
		CarH:    cfg.Player.Height,
		EnemyW:  cfg.Obstacles.Width,
		EnemyH:  cfg.Obstacles.Height,
		DashLen: cfg.Road.DashLength,
		DashGap: cfg.Road.DashGap,
	}
	l.RoadW = l.RoadR - l.RoadL
	l.LaneW = l.RoadW / LaneCount
	for i := range l.LaneX {
		l.LaneX[i] = l.RoadL + l.LaneW*float64(i) + l.LaneW/2
	}
	l.PlayerY = l.H - l.CarH - cfg.Player.BottomMargin
	return l
}

// LaneCenter returns the center x of the given lane, clamping out-of-range
// indices to the nearest valid lane.
func (l *Layout) LaneCenter(lane int) float64 {
	return l.LaneX[core.Clamp(lane, 0, LaneCount-1)]
}

// PlayerTargetX returns the player's top-left target x for a lane.
func (l *Layout) PlayerTargetX(lane int) float64 {
	return l.LaneCenter(lane) - l.CarW/2
}
