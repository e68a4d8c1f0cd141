package config

import (
	_ "embed"
)

//go:embed defaults/chicken.yaml
var defaultChickenYAML []byte

// DefaultChickenConfig returns the built-in configuration.
// It mirrors defaults/chicken.yaml and is used if the embedded file fails to parse.
func DefaultChickenConfig() ChickenConfig {
	return ChickenConfig{
		World: WorldConfig{
			Width:          640,
			Height:         800,
			SafeZone:       120,
			RoadTop:        140,
			CrossingMargin: 10,
		},
		Lanes: LanesConfig{
			Count:      7,
			Height:     60,
			Padding:    8,
			SpeedStep:  0.22,
			SpawnStep:  6,
			CullMargin: 200,
		},
		Traffic: TrafficConfig{
			BaseSpeed:         3.0,
			BaseSpawnInterval: 90,
			MinWidth:          60,
			MaxWidth:          130,
			MinSpeedVariation: 0.8,
			MaxSpeedVariation: 1.35,
			MinOffset:         10,
			MaxOffset:         200,
			Palette:           []string{"red", "orange", "blue", "yellow"},
		},
		Player: PlayerConfig{
			Size:  36,
			Speed: 6,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			PointsPerStep:    4,
			StepSpawnWeight:  4,
			ScoreSpawnWeight: 0.6,
			SpeedIncrement:   0.25,
			SpawnDecrement:   3,
			MinSpawnInterval: 18,
		},
		Controls: ControlsConfig{
			HoldReleaseMS: 120,
			FirstRepeatMS: 250,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChickenYAML
}
