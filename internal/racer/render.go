package racer

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/dkharms/roadrush/internal/core"
)

// Visual characters for rendering
const (
	RoadEdgeChar  = '║'
	LaneDashChar  = '┆'
	CarBodyChar   = '█'
	CarTrimChar   = '▒'
	SpeedLineChar = '│'
	PointerChar   = '▲'
)

// speedLineThreshold is the speed at which streak lines appear.
const speedLineThreshold = 8.0

// Fixed render colors. Obstacle colors come from their palette.
var (
	playerBodyColor = core.RGB{R: 50, G: 150, B: 255}
	playerTrimColor = core.RGB{R: 20, G: 90, B: 180}
	roadEdgeColor   = core.RGB{R: 200, G: 200, B: 200}
	laneDashColor   = core.RGB{R: 180, G: 180, B: 70}
	speedLineColor  = core.RGB{R: 110, G: 110, B: 110}
	heartColor      = core.RGB{R: 230, G: 60, B: 60}
)

// ParticleView is a particle with its render-derived values resolved.
type ParticleView struct {
	X, Y   float64
	Radius float64
	Color  core.RGB
}

// ObstacleView is an obstacle's rectangle plus its palette.
type ObstacleView struct {
	Rect    core.Rect
	Palette Palette
}

// Frame is the read-only view of one tick, everything a renderer needs.
// The renderer is a pure consumer; nothing here aliases mutable state.
type Frame struct {
	Player    core.Rect
	Obstacles []ObstacleView
	Particles []ParticleView

	Score int
	Lives int
	Speed float64

	ScrollOffset float64
	GameOver     bool
	ShowRestart  bool // Cooldown elapsed, restart prompt should display
	Paused       bool
}

// Frame builds the current render view.
func (g *Game) Frame() Frame {
	obs := g.obstacles.Obstacles()
	obstacles := make([]ObstacleView, len(obs))
	for i, o := range obs {
		obstacles[i] = ObstacleView{Rect: o.Rect(&g.layout), Palette: palettes[o.Palette]}
	}

	parts := g.particles.Particles()
	particles := make([]ParticleView, len(parts))
	for i, p := range parts {
		particles[i] = ParticleView{X: p.X, Y: p.Y, Radius: p.Radius(), Color: p.Tint()}
	}

	return Frame{
		Player:    g.playerRect(),
		Obstacles: obstacles,
		Particles: particles,

		Score: g.score,
		Lives: g.lives,
		Speed: g.speed,

		ScrollOffset: g.dashOff,
		GameOver:     g.gameOver,
		ShowRestart:  g.gameOver && g.goTimer == 0,
		Paused:       g.paused,
	}
}

// Render draws the current game state to the screen.
// The simulation space is projected onto the cell grid; cell aspect is
// ignored, the road just gets proportionally narrower on small terminals.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	f := g.Frame()
	sx := float64(dst.Width()) / g.layout.W
	sy := float64(dst.Height()) / g.layout.H

	g.drawRoad(dst, f.ScrollOffset, sx, sy)
	if f.Speed >= speedLineThreshold {
		g.drawSpeedLines(dst, f.Speed, sx, sy)
	}
	for _, o := range f.Obstacles {
		drawCar(dst, o.Rect, o.Palette.Body, o.Palette.Trim, sx, sy)
	}
	drawCar(dst, f.Player, playerBodyColor, playerTrimColor, sx, sy)
	for _, p := range f.Particles {
		drawParticle(dst, p, sx, sy)
	}

	g.drawHUD(dst, f)
	g.drawPointer(dst, sx)

	if f.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if f.GameOver {
		sub := "Hold still..."
		if f.ShowRestart {
			sub = "Show your hand or press R to restart"
		}
		drawCenteredMessage(dst, fmt.Sprintf("GAME OVER  Final Score: %d", f.Score), sub)
	}
}

// drawRoad renders the road edges and the scrolling dashed lane markers.
func (g *Game) drawRoad(dst *core.Screen, scroll float64, sx, sy float64) {
	h := dst.Height()
	leftX := int(g.layout.RoadL * sx)
	rightX := int(g.layout.RoadR * sx)
	dst.DrawVLine(leftX, 0, h, RoadEdgeChar, roadEdgeColor)
	dst.DrawVLine(rightX, 0, h, RoadEdgeChar, roadEdgeColor)

	period := g.layout.DashLen + g.layout.DashGap
	for b := 1; b < LaneCount; b++ {
		x := int((g.layout.RoadL + g.layout.LaneW*float64(b)) * sx)
		for y := 0; y < h; y++ {
			simY := float64(y) / sy
			phase := math.Mod(simY-scroll, period)
			if phase < 0 {
				phase += period
			}
			if phase < g.layout.DashLen {
				dst.SetCell(x, y, LaneDashChar, laneDashColor)
			}
		}
	}
}

// drawSpeedLines renders short-lived streaks across the road at high
// speed. The source is reseeded from a coarse tick so each streak set
// holds for a few frames instead of flickering every tick.
func (g *Game) drawSpeedLines(dst *core.Screen, speed float64, sx, sy float64) {
	rng := rand.New(rand.NewSource(int64(g.tickCount / 3))) //#nosec G404 -- cosmetic only
	count := int(speed * 1.5)
	for i := 0; i < count; i++ {
		simX := g.layout.RoadL + rng.Float64()*g.layout.RoadW
		simY := rng.Float64() * g.layout.H
		dst.SetCell(int(simX*sx), int(simY*sy), SpeedLineChar, speedLineColor)
	}
}

// drawCar fills a car rectangle, trimming the top row as a windshield.
func drawCar(dst *core.Screen, r core.Rect, body, trim core.RGB, sx, sy float64) {
	x0 := int(r.X * sx)
	y0 := int(r.Y * sy)
	w := max(int(r.W*sx), 1)
	h := max(int(r.H*sy), 1)
	dst.DrawRect(x0, y0, w, h, CarBodyChar, body)
	if h >= 2 {
		dst.DrawHLine(x0, y0, w, CarTrimChar, trim)
	}
}

// drawParticle picks a rune by the particle's faded radius.
func drawParticle(dst *core.Screen, p ParticleView, sx, sy float64) {
	var r rune
	switch {
	case p.Radius < 1.5:
		r = '·'
	case p.Radius < 4:
		r = '•'
	default:
		r = '●'
	}
	dst.SetCell(int(p.X*sx), int(p.Y*sy), r, p.Color)
}

// drawHUD renders score and speed on the left, hearts on the right.
func (g *Game) drawHUD(dst *core.Screen, f Frame) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Spd: %.1f ", f.Score, f.Speed))
	hearts := strings.Repeat("♥", f.Lives)
	dst.DrawTextColored(dst.Width()-f.Lives-2, 0, hearts, heartColor)
}

// drawPointer marks the current lane target at the bottom edge.
func (g *Game) drawPointer(dst *core.Screen, sx float64) {
	x := int(g.layout.LaneCenter(g.lane) * sx)
	dst.SetCell(x, dst.Height()-1, PointerChar, playerBodyColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.RGB{})
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
