package racer

import "math"

// Snapshot contains the simulation-relevant game state for determinism
// testing. Particle data is informational only: lifetimes draw from the
// uncontrolled cosmetic source, so the count decays differently between
// otherwise identical runs.
type Snapshot struct {
	Tick    uint64
	Score   int
	Lives   int
	Lane    int
	CarX    float64
	Speed   float64
	DashOff float64

	GameOver      bool
	CooldownTicks int

	SpawnCountdown int
	ObstacleCount  int
	// Obstacle data (each obstacle is 3 floats: CX, Y, Palette)
	ObstacleData []float64

	ParticleCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obs := g.obstacles.Obstacles()
	obstacleData := make([]float64, len(obs)*3)
	for i, o := range obs {
		idx := i * 3
		obstacleData[idx] = o.CX
		obstacleData[idx+1] = o.Y
		obstacleData[idx+2] = float64(o.Palette)
	}

	return Snapshot{
		Tick:    uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:   g.score,
		Lives:   g.lives,
		Lane:    g.lane,
		CarX:    g.carX,
		Speed:   g.speed,
		DashOff: g.dashOff,

		GameOver:      g.gameOver,
		CooldownTicks: g.goTimer,

		SpawnCountdown: g.obstacles.Countdown(),
		ObstacleCount:  len(obs),
		ObstacleData:   obstacleData,

		ParticleCount: g.particles.Count(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lane)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CarX)
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.DashOff)

	if snap.GameOver {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.CooldownTicks) //#nosec G115 -- hash computation

	h = h*31 + uint64(int64(snap.SpawnCountdown)) //#nosec G115 -- countdown may be negative
	h = h*31 + uint64(snap.ObstacleCount)         //#nosec G115 -- hash computation
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	// ParticleCount is deliberately excluded: it depends on the cosmetic
	// random stream.

	return h
}
