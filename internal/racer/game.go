package racer

import (
	"math"
	"math/rand"
	"time"

	"github.com/dkharms/roadrush/internal/config"
	"github.com/dkharms/roadrush/internal/core"
	"github.com/dkharms/roadrush/internal/registry"
)

// scrollFactor converts car speed into road marking scroll speed.
// Markings move slower than obstacles for a sense of depth.
const scrollFactor = 0.6

// Game implements the Road Rush game logic.
// The simulation runs in a continuous pixel space defined by the road
// config; Render projects it onto the terminal cell grid.
type Game struct {
	layout  Layout
	cfg     config.RacerConfig
	runtime core.RuntimeConfig

	obstacles *ObstacleManager
	particles *ParticleSystem

	// gameplayRNG drives spawn decisions. Seeded from runtime.Seed, it is
	// the only random source that can affect simulation outcomes.
	gameplayRNG *rand.Rand

	tickCount int
	lane      int     // Current lane signal, recomputed every SignalEveryTicks
	carX      float64 // Player top-left x, eased toward the lane target
	speed     float64
	score     int
	lives     int
	dashOff   float64 // Road marking scroll offset

	gameOver bool
	paused   bool
	goTimer  int // Ticks until restart is accepted after game over
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Road Rush game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Rush"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		cfg = config.DefaultRacerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRacerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.layout = NewLayout(&cfg)

	g.gameplayRNG = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic gameplay stream

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(&g.layout, cfg.Obstacles)
	}
	g.obstacles.Seed(g.gameplayRNG)

	if g.particles == nil {
		// Particle variation is cosmetic; it never feeds back into the
		// simulation, so an uncontrolled seed keeps determinism intact.
		cosmetic := rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- cosmetic only
		g.particles = NewParticleSystem(cfg.Particles, cosmetic)
	}

	g.resetSession()
}

// resetSession restores the initial playing state. It is the single
// factory for a fresh run, used both by Reset and by the post-game-over
// restart, so a restarted session is indistinguishable from a new one.
func (g *Game) resetSession() {
	g.tickCount = 0
	g.lane = DefaultLane
	g.carX = g.layout.PlayerTargetX(DefaultLane)
	g.speed = g.cfg.Gameplay.InitialSpeed
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.dashOff = 0
	g.gameOver = false
	g.paused = false
	g.goTimer = 0
	g.obstacles.Reset()
	g.particles.Reset()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		g.stepGameOver(in)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The lane signal is recomputed at a reduced rate; between samples
	// the car keeps steering toward the last known lane.
	if g.tickCount%g.cfg.Player.SignalEveryTicks == 0 {
		g.sampleLane(in)
	}
	g.tickCount++

	g.carX = core.Lerp(g.carX, g.layout.PlayerTargetX(g.lane), g.cfg.Player.Smoothing)

	g.obstacles.Tick(g.score)
	g.obstacles.Advance(g.speed)

	collided, passed := g.obstacles.Sweep(g.playerRect())
	for _, o := range collided {
		cx, cy := o.Rect(&g.layout).Center()
		g.particles.Explode(cx, cy, palettes[o.Palette])
		if g.lives > 0 {
			g.lives--
		}
	}
	if g.lives == 0 {
		g.gameOver = true
		g.goTimer = int(g.cfg.Gameplay.RestartCooldownSec * float64(g.runtime.TickRate))
	}

	// Score each passed obstacle individually so no progression step is
	// skipped when several retire on the same tick.
	for i := 0; i < passed; i++ {
		g.score++
		if g.score%g.cfg.Gameplay.SpeedEveryPoints == 0 {
			g.speed = math.Min(g.speed+g.cfg.Gameplay.SpeedStep, g.cfg.Gameplay.MaxSpeed)
		}
	}

	g.particles.Update()
	g.advanceScroll()

	return core.StepResult{State: g.State()}
}

// stepGameOver keeps the scene alive during the game-over screen:
// particles burn out, the road keeps scrolling, and once the cooldown
// expires a present pointer (or an explicit restart action) starts a
// fresh session.
func (g *Game) stepGameOver(in core.InputFrame) {
	g.particles.Update()
	g.advanceScroll()

	if g.goTimer > 0 {
		g.goTimer--
		return
	}
	if in.HasPointer || in.Has(core.ActionRestart) {
		g.resetSession()
	}
}

// sampleLane refreshes the lane signal from the pointer. A missing
// pointer steers toward the center lane rather than holding the last
// seen position.
func (g *Game) sampleLane(in core.InputFrame) {
	if in.HasPointer {
		g.lane = LaneForX(in.PointerX, in.FrameW)
	} else {
		g.lane = DefaultLane
	}
}

// advanceScroll moves the road markings, wrapping at one dash period.
func (g *Game) advanceScroll() {
	g.dashOff = math.Mod(g.dashOff+g.speed*scrollFactor, g.layout.DashLen+g.layout.DashGap)
}

// playerRect returns the player's collision rectangle in simulation space.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.carX, g.layout.PlayerY, g.layout.CarW, g.layout.CarH)
}

// CurrentSpeed returns the obstacle speed in pixels per tick. Speed only
// grows within a session, so at game over this is also the run's top
// speed.
func (g *Game) CurrentSpeed() float64 {
	return g.speed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}
