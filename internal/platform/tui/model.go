package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkharms/roadrush/internal/core"
	"github.com/dkharms/roadrush/internal/registry"
	"github.com/dkharms/roadrush/internal/storage"
)

// speedTelemetry is implemented by games that expose a current speed,
// used to enrich the persisted run record.
type speedTelemetry interface {
	CurrentSpeed() float64
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	tracker    *HandTracker
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	runStart   time.Time
	startLives int
	topSpeed   float64

	quitting bool
	runSaved bool // Whether the current game over has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		tracker:    NewHandTracker(),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		runStart:   time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	ApplyTrackerOp(m.tracker, m.keyMapper.MapTrackerKey(msg))

	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// its own fixed coordinate space, so a resize only touches the screen
// buffer; the game keeps playing.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	// Sample the tracker once per tick.
	m.tracker.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if st, ok := m.game.(speedTelemetry); ok && st.CurrentSpeed() > m.topSpeed {
		m.topSpeed = st.CurrentSpeed()
	}
	if m.gameState.Lives > m.startLives {
		m.startLives = m.gameState.Lives
	}

	// The game restarts itself after its cooldown; detect the transition
	// to begin tracking a fresh run.
	if wasOver && !m.gameState.GameOver {
		m.runStart = time.Now()
		m.startLives = m.gameState.Lives
		m.topSpeed = 0
		m.runSaved = false
	}

	if m.gameState.GameOver && !m.runSaved {
		m.persistRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// persistRun saves the finished run, best-effort.
func (m *Model) persistRun() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		GameID:       m.game.ID(),
		Score:        m.gameState.Score,
		DurationSecs: int(time.Since(m.runStart).Seconds()),
		TopSpeed:     m.topSpeed,
		LivesUsed:    m.startLives,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".roadrush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
