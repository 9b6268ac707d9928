package racer

import (
	"math"
	"math/rand"

	"github.com/dkharms/roadrush/internal/config"
	"github.com/dkharms/roadrush/internal/core"
)

// Particle is a single explosion fragment. Position and velocity are in
// simulation pixels per tick; Life counts remaining ticks.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.RGB
	Size    float64
}

// Fade returns the remaining life fraction in [0,1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Radius returns the particle's current draw radius, shrinking with age.
func (p Particle) Radius() float64 {
	return p.Size * p.Fade()
}

// Tint returns the particle's color dimmed by its remaining life.
func (p Particle) Tint() core.RGB {
	return p.Color.Scale(p.Fade())
}

// ParticleSystem owns explosion particles. Bursts and motion draw from a
// cosmetic random source, independent of the gameplay stream, so particle
// variation never perturbs spawning or any other simulation outcome.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	cfg       config.ParticlesConfig
}

// NewParticleSystem creates a particle system using the given cosmetic
// random source.
func NewParticleSystem(cfg config.ParticlesConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, cfg.Burst*2),
		rng:       rng,
		cfg:       cfg,
	}
}

// Explode emits a radial burst at the given point, colored after the
// destroyed car's palette with warm accent sparks mixed in.
func (ps *ParticleSystem) Explode(x, y float64, pal Palette) {
	colors := [...]core.RGB{pal.Body, pal.Trim, accentWarmWhite, accentAmber}
	for i := 0; i < ps.cfg.Burst; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.cfg.MinSpeed + ps.rng.Float64()*(ps.cfg.MaxSpeed-ps.cfg.MinSpeed)
		life := ps.cfg.MinLife + ps.rng.Intn(ps.cfg.MaxLife-ps.cfg.MinLife+1)
		ps.particles = append(ps.particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Color:   colors[ps.rng.Intn(len(colors))],
			Size:    ps.cfg.MinSize + ps.rng.Float64()*(ps.cfg.MaxSize-ps.cfg.MinSize),
		})
	}
}

// Update advances every particle by one tick, applying gravity, and
// removes the ones whose life ran out.
func (ps *ParticleSystem) Update() {
	remaining := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ps.cfg.Gravity
		p.Life--
		if p.Life > 0 {
			remaining = append(remaining, p)
		}
	}
	ps.particles = remaining
}

// Reset removes all particles. Called on session restart so visuals from
// the previous run never leak into the next one.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}

// Particles returns the live particle collection.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}
