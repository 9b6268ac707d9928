package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default racer configuration.
// It mirrors defaults/racer.yaml and is the fallback when the embedded
// YAML cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Road: RoadConfig{
			Width:      800,
			Height:     600,
			Left:       80,
			Right:      720,
			DashLength: 40,
			DashGap:    30,
		},
		Player: PlayerConfig{
			Width:            52,
			Height:           84,
			BottomMargin:     24,
			Smoothing:        0.25,
			SignalEveryTicks: 2,
		},
		Obstacles: ObstaclesConfig{
			Width:        52,
			Height:       84,
			MaxCount:     12,
			SpawnBase:    70,
			SpawnFloor:   25,
			ScoreDivisor: 5,
			SpawnJitter:  8,
		},
		Particles: ParticlesConfig{
			Burst:    40,
			Gravity:  0.25,
			MinSpeed: 2,
			MaxSpeed: 9,
			MinLife:  25,
			MaxLife:  50,
			MinSize:  3,
			MaxSize:  8,
		},
		Gameplay: GameplayConfig{
			Lives:              3,
			InitialSpeed:       5.0,
			MaxSpeed:           18.0,
			SpeedStep:          0.5,
			SpeedEveryPoints:   8,
			RestartCooldownSec: 2.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for the racer.
func GetDefaultYAML() []byte {
	return defaultRacerYAML
}
