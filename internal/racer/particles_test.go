package racer

import (
	"math/rand"
	"testing"

	"github.com/dkharms/roadrush/internal/config"
	"github.com/dkharms/roadrush/internal/core"
)

func testParticles(seed int64) (*ParticleSystem, config.ParticlesConfig) {
	cfg := config.DefaultRacerConfig().Particles
	return NewParticleSystem(cfg, rand.New(rand.NewSource(seed))), cfg
}

func TestExplodeBurst(t *testing.T) {
	ps, cfg := testParticles(1)
	pal := palettes[0]
	ps.Explode(100, 200, pal)

	if ps.Count() != cfg.Burst {
		t.Fatalf("Burst should emit %d particles, got %d", cfg.Burst, ps.Count())
	}

	allowed := map[core.RGB]bool{
		pal.Body:        true,
		pal.Trim:        true,
		accentWarmWhite: true,
		accentAmber:     true,
	}
	for _, p := range ps.Particles() {
		if p.X != 100 || p.Y != 200 {
			t.Errorf("Particle should start at the burst point, got (%f, %f)", p.X, p.Y)
		}
		if !allowed[p.Color] {
			t.Errorf("Particle color %+v not in the burst palette", p.Color)
		}
		if p.Life < cfg.MinLife || p.Life > cfg.MaxLife {
			t.Errorf("Particle life %d outside [%d, %d]", p.Life, cfg.MinLife, cfg.MaxLife)
		}
		if p.Life != p.MaxLife {
			t.Errorf("Fresh particle should have full life, got %d/%d", p.Life, p.MaxLife)
		}
		if p.Size < cfg.MinSize || p.Size > cfg.MaxSize {
			t.Errorf("Particle size %f outside [%f, %f]", p.Size, cfg.MinSize, cfg.MaxSize)
		}
	}
}

func TestUpdateMotionAndGravity(t *testing.T) {
	ps, cfg := testParticles(1)
	ps.particles = append(ps.particles, Particle{
		X: 10, Y: 20, VX: 2, VY: -3, Life: 10, MaxLife: 10, Size: 5,
	})

	ps.Update()

	p := ps.Particles()[0]
	if p.X != 12 || p.Y != 17 {
		t.Errorf("Particle should move by its velocity, got (%f, %f)", p.X, p.Y)
	}
	if p.VY != -3+cfg.Gravity {
		t.Errorf("Gravity should pull velocity down, got VY=%f", p.VY)
	}
	if p.Life != 9 {
		t.Errorf("Life should tick down, got %d", p.Life)
	}
}

func TestParticlesDrain(t *testing.T) {
	ps, cfg := testParticles(5)
	ps.Explode(0, 0, palettes[2])

	for i := 0; i < cfg.MaxLife; i++ {
		ps.Update()
	}
	if ps.Count() != 0 {
		t.Errorf("All particles should drain within %d ticks, %d remain", cfg.MaxLife, ps.Count())
	}
}

func TestParticleDerivedValues(t *testing.T) {
	p := Particle{
		Life: 5, MaxLife: 10, Size: 4,
		Color: core.RGB{R: 200, G: 100, B: 50},
	}

	if p.Fade() != 0.5 {
		t.Errorf("Fade should be 0.5 at half life, got %f", p.Fade())
	}
	if p.Radius() != 2 {
		t.Errorf("Radius should shrink with fade, got %f", p.Radius())
	}
	tint := p.Tint()
	want := core.RGB{R: 100, G: 50, B: 25}
	if tint != want {
		t.Errorf("Tint should scale per channel, got %+v want %+v", tint, want)
	}
}

func TestParticlesReset(t *testing.T) {
	ps, _ := testParticles(1)
	ps.Explode(50, 50, palettes[1])
	if ps.Count() == 0 {
		t.Fatal("Explode should emit particles")
	}

	ps.Reset()
	if ps.Count() != 0 {
		t.Errorf("Reset should clear all particles, %d remain", ps.Count())
	}
}
