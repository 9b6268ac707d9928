// Package config provides YAML-based game configuration loading for the
// roadrush engine.
package config

// RacerConfig contains all configuration for the racer game.
type RacerConfig struct {
	Road      RoadConfig      `yaml:"road"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Particles ParticlesConfig `yaml:"particles"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// RoadConfig defines the simulation space and road geometry.
// All distances are simulation pixels.
type RoadConfig struct {
	Width      float64 `yaml:"width"`       // Simulation space width
	Height     float64 `yaml:"height"`      // Simulation space height
	Left       float64 `yaml:"left"`        // Left road edge
	Right      float64 `yaml:"right"`       // Right road edge
	DashLength float64 `yaml:"dash_length"` // Lane marker dash length
	DashGap    float64 `yaml:"dash_gap"`    // Gap between dashes
}

// PlayerConfig defines player car parameters.
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BottomMargin     float64 `yaml:"bottom_margin"`      // Distance from bottom edge
	Smoothing        float64 `yaml:"smoothing"`          // Lane-change lerp factor per tick
	SignalEveryTicks int     `yaml:"signal_every_ticks"` // Lane signal recompute interval
}

// ObstaclesConfig defines obstacle spawn and size parameters.
type ObstaclesConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxCount     int     `yaml:"max_count"`     // Hard cap on live obstacles
	SpawnBase    int     `yaml:"spawn_base"`    // Base spawn interval in ticks
	SpawnFloor   int     `yaml:"spawn_floor"`   // Minimum spawn interval in ticks
	ScoreDivisor int     `yaml:"score_divisor"` // Interval shrinks by score/divisor
	SpawnJitter  int     `yaml:"spawn_jitter"`  // Uniform jitter applied to each interval
}

// ParticlesConfig defines explosion effect parameters.
type ParticlesConfig struct {
	Burst    int     `yaml:"burst"`     // Particles per explosion
	Gravity  float64 `yaml:"gravity"`   // Downward acceleration per tick
	MinSpeed float64 `yaml:"min_speed"` // Initial speed range
	MaxSpeed float64 `yaml:"max_speed"`
	MinLife  int     `yaml:"min_life"` // Lifetime range in ticks
	MaxLife  int     `yaml:"max_life"`
	MinSize  float64 `yaml:"min_size"` // Base radius range in pixels
	MaxSize  float64 `yaml:"max_size"`
}

// GameplayConfig defines scoring, lives and speed progression.
type GameplayConfig struct {
	Lives              int     `yaml:"lives"`
	InitialSpeed       float64 `yaml:"initial_speed"` // Obstacle speed in pixels per tick
	MaxSpeed           float64 `yaml:"max_speed"`
	SpeedStep          float64 `yaml:"speed_step"`           // Added at each progression step
	SpeedEveryPoints   int     `yaml:"speed_every_points"`   // Step when score crosses a multiple
	RestartCooldownSec float64 `yaml:"restart_cooldown_sec"` // Game-over cooldown before restart
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyRacerPreset modifies the config based on a difficulty preset.
// Presets adjust lives and starting speed only; the step progression
// rule itself is fixed.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.InitialSpeed = 4.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.InitialSpeed = 6.5
	}
}
