package racer

import (
	"math/rand"
	"testing"

	"github.com/dkharms/roadrush/internal/config"
	"github.com/dkharms/roadrush/internal/core"
)

func testManager(seed int64) (*ObstacleManager, *Layout, config.RacerConfig) {
	cfg := config.DefaultRacerConfig()
	layout := NewLayout(&cfg)
	om := NewObstacleManager(&layout, cfg.Obstacles)
	om.Seed(rand.New(rand.NewSource(seed)))
	return om, &layout, cfg
}

func TestSpawnTiming(t *testing.T) {
	om, _, cfg := testManager(1)

	// No spawn until the initial countdown elapses.
	for i := 0; i < cfg.Obstacles.SpawnBase-1; i++ {
		om.Tick(0)
		if om.Count() != 0 {
			t.Fatalf("Spawned %d ticks early", cfg.Obstacles.SpawnBase-1-i)
		}
	}
	om.Tick(0)
	if om.Count() != 1 {
		t.Errorf("Expected one obstacle after %d ticks, got %d", cfg.Obstacles.SpawnBase, om.Count())
	}
}

func TestSpawnPlacement(t *testing.T) {
	om, layout, _ := testManager(7)

	for i := 0; i < 2000; i++ {
		om.Tick(0)
	}

	laneCenters := map[float64]bool{}
	for _, x := range layout.LaneX {
		laneCenters[x] = true
	}
	for _, o := range om.Obstacles() {
		if !laneCenters[o.CX] {
			t.Errorf("Obstacle center %f is not a lane center", o.CX)
		}
		if o.Palette < 0 || o.Palette >= len(palettes) {
			t.Errorf("Obstacle palette %d out of range", o.Palette)
		}
		if o.Y != -layout.EnemyH {
			t.Errorf("Fresh obstacle should start above the screen at %f, got %f", -layout.EnemyH, o.Y)
		}
	}
}

func TestSpawnCap(t *testing.T) {
	om, _, cfg := testManager(3)

	for i := 0; i < 5000; i++ {
		om.Tick(0)
		if om.Count() > cfg.Obstacles.MaxCount {
			t.Fatalf("Obstacle count %d exceeds cap %d", om.Count(), cfg.Obstacles.MaxCount)
		}
	}
	if om.Count() != cfg.Obstacles.MaxCount {
		t.Errorf("Expected the collection to fill to the cap %d, got %d", cfg.Obstacles.MaxCount, om.Count())
	}

	// Once capped, a due spawn is skipped but the countdown keeps going;
	// freeing a slot makes the next tick spawn immediately.
	if om.Countdown() > 0 {
		t.Errorf("Blocked spawn should leave the countdown due, got %d", om.Countdown())
	}
	om.obstacles = om.obstacles[:len(om.obstacles)-1]
	om.Tick(0)
	if om.Count() != cfg.Obstacles.MaxCount {
		t.Errorf("Freed slot should fill on the next tick, got %d", om.Count())
	}
}

func TestSpawnIntervalShrinksWithScore(t *testing.T) {
	om, _, cfg := testManager(1)

	if iv := om.interval(0); iv != cfg.Obstacles.SpawnBase {
		t.Errorf("Interval at score 0 should be %d, got %d", cfg.Obstacles.SpawnBase, iv)
	}

	prev := om.interval(0)
	for score := 0; score <= 1000; score += 10 {
		iv := om.interval(score)
		if iv > prev {
			t.Errorf("Interval should never grow with score, %d -> %d at score %d", prev, iv, score)
		}
		if iv < cfg.Obstacles.SpawnFloor {
			t.Errorf("Interval %d below floor %d at score %d", iv, cfg.Obstacles.SpawnFloor, score)
		}
		prev = iv
	}
}

func TestSpawnJitterBounds(t *testing.T) {
	om, _, cfg := testManager(11)

	for spawned := 0; spawned < 50; {
		before := om.Count()
		om.Tick(0)
		if om.Count() > before {
			spawned++
			lo := om.interval(0) - cfg.Obstacles.SpawnJitter
			hi := om.interval(0) + cfg.Obstacles.SpawnJitter
			if om.Countdown() < lo || om.Countdown() > hi {
				t.Fatalf("Post-spawn countdown %d outside [%d, %d]", om.Countdown(), lo, hi)
			}
			// Keep the collection clear so the cap never interferes.
			om.obstacles = om.obstacles[:0]
		}
	}
}

func TestAdvance(t *testing.T) {
	om, layout, _ := testManager(1)
	om.obstacles = append(om.obstacles, Obstacle{CX: layout.LaneX[0], Y: 10})

	om.Advance(5)
	if om.Obstacles()[0].Y != 15 {
		t.Errorf("Advance should move obstacles down by speed, got %f", om.Obstacles()[0].Y)
	}
}

func TestSweepRetiresPassedObstacles(t *testing.T) {
	om, layout, _ := testManager(1)
	om.obstacles = append(om.obstacles,
		Obstacle{CX: layout.LaneX[0], Y: layout.H + 1}, // Past the bottom
		Obstacle{CX: layout.LaneX[1], Y: layout.H},     // Exactly at the edge, kept
		Obstacle{CX: layout.LaneX[2], Y: 100},
	)

	player := core.NewRect(layout.PlayerTargetX(1), layout.PlayerY, layout.CarW, layout.CarH)
	collided, passed := om.Sweep(player)

	if len(collided) != 0 {
		t.Errorf("No obstacle should collide, got %d", len(collided))
	}
	if passed != 1 {
		t.Errorf("Exactly one obstacle should pass, got %d", passed)
	}
	if om.Count() != 2 {
		t.Errorf("Two obstacles should remain, got %d", om.Count())
	}
}

func TestSweepCollisionBeatsExit(t *testing.T) {
	// An obstacle that overlaps the player and sits past the bottom
	// boundary in the same tick counts as a collision, never a pass.
	om, layout, _ := testManager(1)
	om.obstacles = append(om.obstacles, Obstacle{CX: layout.LaneX[1], Y: layout.H + 1})

	player := core.NewRect(layout.LaneX[1]-layout.CarW/2, layout.H+1, layout.CarW, layout.CarH)
	collided, passed := om.Sweep(player)

	if len(collided) != 1 {
		t.Fatalf("Overlapping obstacle should collide, got %d", len(collided))
	}
	if passed != 0 {
		t.Errorf("Collision must take priority over exit, got %d passed", passed)
	}
	if om.Count() != 0 {
		t.Errorf("Collided obstacle should be removed, %d remain", om.Count())
	}
}

func TestSweepPreservesOrder(t *testing.T) {
	om, layout, _ := testManager(1)
	om.obstacles = append(om.obstacles,
		Obstacle{CX: layout.LaneX[0], Y: 10},
		Obstacle{CX: layout.LaneX[1], Y: layout.H + 1},
		Obstacle{CX: layout.LaneX[2], Y: 30},
	)

	player := core.NewRect(0, -200, 1, 1) // Far away, no collisions
	_, passed := om.Sweep(player)

	if passed != 1 {
		t.Fatalf("One obstacle should pass, got %d", passed)
	}
	obs := om.Obstacles()
	if len(obs) != 2 || obs[0].Y != 10 || obs[1].Y != 30 {
		t.Errorf("Survivors should keep their order, got %+v", obs)
	}
}

func TestResetKeepsRNGStream(t *testing.T) {
	// Two managers with the same seed, one reset mid-stream: the reset
	// clears state but does not rewind the random source.
	om1, _, cfg := testManager(42)
	om2, _, _ := testManager(42)

	for i := 0; i < cfg.Obstacles.SpawnBase; i++ {
		om1.Tick(0)
		om2.Tick(0)
	}
	om1.Reset()
	if om1.Count() != 0 {
		t.Fatalf("Reset should clear obstacles, got %d", om1.Count())
	}
	if om1.Countdown() != cfg.Obstacles.SpawnBase {
		t.Errorf("Reset should restore the initial countdown, got %d", om1.Countdown())
	}

	// om1's first post-reset spawn consumes the same draws as om2's
	// second spawn, so lane and palette must match.
	for i := 0; i < cfg.Obstacles.SpawnBase; i++ {
		om1.Tick(0)
	}
	for om2.Count() < 2 {
		om2.Tick(0)
	}
	if om1.Count() != 1 {
		t.Fatalf("Expected one post-reset spawn, got %d", om1.Count())
	}
	got, want := om1.Obstacles()[0], om2.Obstacles()[1]
	if got.CX != want.CX || got.Palette != want.Palette {
		t.Errorf("Post-reset spawn should continue the stream, got (%f, %d) want (%f, %d)",
			got.CX, got.Palette, want.CX, want.Palette)
	}
}
