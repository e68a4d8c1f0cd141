// Package config provides YAML-based game configuration loading and
// difficulty management for Chicken Road.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/chicken-road/internal/core"
)

// ChickenConfig contains all tunable parameters of the game.
// Distances are world units, intervals are ticks.
type ChickenConfig struct {
	World      WorldConfig      `yaml:"world"`
	Lanes      LanesConfig      `yaml:"lanes"`
	Traffic    TrafficConfig    `yaml:"traffic"`
	Player     PlayerConfig     `yaml:"player"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	SafeZone       int `yaml:"safe_zone"`       // Height of the top and bottom grass bands
	RoadTop        int `yaml:"road_top"`        // Y where the first lane begins
	CrossingMargin int `yaml:"crossing_margin"` // Player top <= SafeZone-CrossingMargin scores
}

// LanesConfig defines the traffic lanes.
type LanesConfig struct {
	Count      int     `yaml:"count"`
	Height     int     `yaml:"height"`
	Padding    int     `yaml:"padding"`     // Lane height minus obstacle height
	SpeedStep  float64 `yaml:"speed_step"`  // Extra base speed per lane index
	SpawnStep  int     `yaml:"spawn_step"`  // Fewer frames between spawns per lane index
	CullMargin int     `yaml:"cull_margin"` // Distance past the edge before an obstacle is removed
}

// TrafficConfig defines obstacle generation.
type TrafficConfig struct {
	BaseSpeed         float64  `yaml:"base_speed"`
	BaseSpawnInterval int      `yaml:"base_spawn_interval"`
	MinWidth          int      `yaml:"min_width"`
	MaxWidth          int      `yaml:"max_width"`
	MinSpeedVariation float64  `yaml:"min_speed_variation"`
	MaxSpeedVariation float64  `yaml:"max_speed_variation"`
	MinOffset         int      `yaml:"min_offset"` // Extra off-screen distance at spawn
	MaxOffset         int      `yaml:"max_offset"`
	Palette           []string `yaml:"palette"`
}

// PlayerConfig defines the chicken.
type PlayerConfig struct {
	Size  int `yaml:"size"`
	Speed int `yaml:"speed"` // Units per tick per held direction
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines how traffic escalates with score.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	PointsPerStep    int     `yaml:"points_per_step"`
	StepSpawnWeight  int     `yaml:"step_spawn_weight"`  // Spawn modifier per difficulty step
	ScoreSpawnWeight float64 `yaml:"score_spawn_weight"` // Spawn modifier per point (floored)
	SpeedIncrement   float64 `yaml:"speed_increment"`
	SpawnDecrement   int     `yaml:"spawn_decrement"`
	MinSpawnInterval int     `yaml:"min_spawn_interval"`
}

// ControlsConfig defines how terminal key repeats become held input.
type ControlsConfig struct {
	HoldReleaseMS int `yaml:"hold_release_ms"` // Release after this long without a repeat
	FirstRepeatMS int `yaml:"first_repeat_ms"` // Grace for the terminal's initial repeat delay
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// The empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ChickenConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Gameplay.Lives = 5
		cfg.Traffic.BaseSpeed *= 0.8
		cfg.Traffic.BaseSpawnInterval += 20
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Gameplay.Lives = 2
		cfg.Traffic.BaseSpeed *= 1.3
		cfg.Traffic.BaseSpawnInterval -= 20
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}

// PaletteColors resolves the palette names. Unknown names are skipped;
// an empty result falls back to red.
func (t TrafficConfig) PaletteColors() []core.Color {
	colors := make([]core.Color, 0, len(t.Palette))
	for _, name := range t.Palette {
		if c, ok := core.ParseColor(name); ok {
			colors = append(colors, c)
		}
	}
	if len(colors) == 0 {
		colors = append(colors, core.ColorRed)
	}
	return colors
}

// LaneTop returns the top y of the lane with the given index.
func (c ChickenConfig) LaneTop(index int) int {
	return c.World.RoadTop + index*c.Lanes.Height
}

// CrossingLine returns the y the player's top edge must reach to score.
func (c ChickenConfig) CrossingLine() int {
	return c.World.SafeZone - c.World.CrossingMargin
}

// PlayerSpawn returns the chicken's start position: centered horizontally
// and vertically within the bottom safe zone.
func (c ChickenConfig) PlayerSpawn() (int, int) {
	x := (c.World.Width - c.Player.Size) / 2
	y := c.World.Height - c.World.SafeZone + (c.World.SafeZone-c.Player.Size)/2
	return x, y
}

// Validate reports configurations the simulation cannot run with.
func (c ChickenConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	check(c.World.SafeZone > 0, "world.safe_zone must be positive")
	check(c.Lanes.Count > 0, "lanes.count must be positive")
	check(c.Lanes.Height > 0, "lanes.height must be positive")
	check(c.Lanes.Padding >= 0 && c.Lanes.Padding < c.Lanes.Height, "lanes.padding must be in [0, lanes.height)")
	check(c.Lanes.CullMargin >= 0, "lanes.cull_margin must not be negative")
	check(c.LaneTop(c.Lanes.Count) <= c.World.Height-c.World.SafeZone,
		"lanes overflow into the bottom safe zone (road ends at %d)", c.LaneTop(c.Lanes.Count))
	check(c.World.RoadTop >= c.CrossingLine(), "world.road_top must be below the crossing line")
	check(c.Traffic.MinWidth > 0 && c.Traffic.MinWidth <= c.Traffic.MaxWidth, "traffic width range is invalid")
	check(c.Traffic.MinSpeedVariation > 0 && c.Traffic.MinSpeedVariation <= c.Traffic.MaxSpeedVariation,
		"traffic speed variation range is invalid")
	check(c.Traffic.MinOffset >= 0 && c.Traffic.MinOffset <= c.Traffic.MaxOffset, "traffic offset range is invalid")
	check(c.Traffic.BaseSpeed > 0, "traffic.base_speed must be positive")
	check(c.Player.Size > 0 && c.Player.Size <= c.World.SafeZone, "player.size must be in (0, world.safe_zone]")
	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive")
	check(c.Difficulty.MinSpawnInterval > 0, "difficulty.min_spawn_interval must be positive")
	check(c.Difficulty.PointsPerStep > 0, "difficulty.points_per_step must be positive")
	check(c.Controls.HoldReleaseMS > 0, "controls.hold_release_ms must be positive")
	check(c.Controls.FirstRepeatMS >= 0, "controls.first_repeat_ms must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
