package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/chicken-road/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees what the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultChickenConfig()) {
		t.Errorf("embedded defaults drifted from DefaultChickenConfig():\n got %+v\nwant %+v", cfg, DefaultChickenConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultChickenConfig()) {
		t.Error("Load() without any files should return the defaults")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "mine.yaml")
	writeFile(t, path, "gameplay:\n  lives: 9\nplayer:\n  speed: 4\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("Lives = %d, expected 9", cfg.Gameplay.Lives)
	}
	if cfg.Player.Speed != 4 {
		t.Errorf("Speed = %d, expected 4", cfg.Player.Speed)
	}
	if cfg.Lanes.Count != 7 {
		t.Errorf("unset keys should keep defaults, lanes.count = %d", cfg.Lanes.Count)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(work, "broken.yaml")
	writeFile(t, broken, "lanes: [this is not a map")
	if _, err := Load(broken); err == nil {
		t.Error("unparsable custom config should fail")
	}

	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "gameplay:\n  lives: 0\n")
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("invalid custom config should fail mentioning lives, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", configFile), "gameplay:\n  lives: 4\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("local config should be used, lives = %d", cfg.Gameplay.Lives)
	}

	writeFile(t, filepath.Join(home, ".chicken-road", "configs", configFile), "gameplay:\n  lives: 6\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 6 {
		t.Errorf("user config should win over local, lives = %d", cfg.Gameplay.Lives)
	}

	// A broken user config is skipped, not fatal
	writeFile(t, filepath.Join(home, ".chicken-road", "configs", configFile), "gameplay:\n  lives: -1\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("invalid user config should fall through to local, lives = %d", cfg.Gameplay.Lives)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ChickenConfig)
		field  string
	}{
		{"no lanes", func(c *ChickenConfig) { c.Lanes.Count = 0 }, "lanes.count"},
		{"padding too big", func(c *ChickenConfig) { c.Lanes.Padding = c.Lanes.Height }, "padding"},
		{"lanes overflow", func(c *ChickenConfig) { c.Lanes.Count = 20 }, "overflow"},
		{"inverted widths", func(c *ChickenConfig) { c.Traffic.MinWidth = 200 }, "width"},
		{"inverted variation", func(c *ChickenConfig) { c.Traffic.MaxSpeedVariation = 0.5 }, "variation"},
		{"zero min interval", func(c *ChickenConfig) { c.Difficulty.MinSpawnInterval = 0 }, "min_spawn_interval"},
		{"huge player", func(c *ChickenConfig) { c.Player.Size = 500 }, "player.size"},
		{"crossing line below road", func(c *ChickenConfig) { c.World.RoadTop = 50 }, "road_top"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultChickenConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestGeometryHelpers(t *testing.T) {
	cfg := DefaultChickenConfig()

	if got := cfg.LaneTop(0); got != 140 {
		t.Errorf("LaneTop(0) = %d, expected 140", got)
	}
	if got := cfg.LaneTop(6); got != 500 {
		t.Errorf("LaneTop(6) = %d, expected 500", got)
	}
	if got := cfg.CrossingLine(); got != 110 {
		t.Errorf("CrossingLine() = %d, expected 110", got)
	}
	x, y := cfg.PlayerSpawn()
	if x != 302 || y != 722 {
		t.Errorf("PlayerSpawn() = (%d, %d), expected (302, 722)", x, y)
	}
}

func TestPaletteColors(t *testing.T) {
	tr := TrafficConfig{Palette: []string{"red", "nope", "blue"}}
	got := tr.PaletteColors()
	want := []core.Color{core.ColorRed, core.ColorBlue}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PaletteColors() = %v, expected %v", got, want)
	}

	empty := TrafficConfig{}
	if got := empty.PaletteColors(); len(got) != 1 || got[0] != core.ColorRed {
		t.Errorf("empty palette should fall back to red, got %v", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultChickenConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset should produce a valid config: %v", err)
			}
		})
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
}

func TestDifficultySpawnModifier(t *testing.T) {
	d := NewDifficultyManager(DefaultChickenConfig().Difficulty)

	tests := []struct {
		step, score, expected int
	}{
		{0, 0, 0},
		{0, 1, 0},  // floor(0.6)
		{0, 2, 1},  // floor(1.2)
		{1, 4, 6},  // 4 + floor(2.4)
		{2, 9, 13}, // 8 + floor(5.4)
		{10, 40, 64},
	}

	for _, tc := range tests {
		if got := d.SpawnModifier(tc.step, tc.score); got != tc.expected {
			t.Errorf("SpawnModifier(%d, %d) = %d, expected %d", tc.step, tc.score, got, tc.expected)
		}
	}

	d = NewDifficultyManager(DifficultyConfig{Enabled: false, StepSpawnWeight: 4, ScoreSpawnWeight: 0.6})
	if got := d.SpawnModifier(5, 50); got != 0 {
		t.Errorf("disabled manager should not modify, got %d", got)
	}
}

func TestDifficultyStepDue(t *testing.T) {
	d := NewDifficultyManager(DefaultChickenConfig().Difficulty)

	for score, want := range map[int]bool{0: false, 1: false, 3: false, 4: true, 8: true, 9: false} {
		if got := d.StepDue(score); got != want {
			t.Errorf("StepDue(%d) = %v, expected %v", score, got, want)
		}
	}

	d = NewDifficultyManager(DifficultyConfig{Enabled: false, PointsPerStep: 4})
	if d.StepDue(4) {
		t.Error("disabled manager should never step")
	}
}

func TestDifficultyIntervalsClamped(t *testing.T) {
	d := NewDifficultyManager(DefaultChickenConfig().Difficulty)

	if got := d.EffectiveInterval(90, 10); got != 80 {
		t.Errorf("EffectiveInterval(90, 10) = %d, expected 80", got)
	}
	if got := d.EffectiveInterval(90, 1000); got != 18 {
		t.Errorf("EffectiveInterval(90, 1000) = %d, expected 18", got)
	}
	if got := d.NextInterval(20); got != 18 {
		t.Errorf("NextInterval(20) = %d, expected 18", got)
	}
	if got := d.NextInterval(18); got != 18 {
		t.Errorf("NextInterval(18) = %d, expected 18", got)
	}
	if got := d.NextSpeed(3.0); got != 3.25 {
		t.Errorf("NextSpeed(3.0) = %f, expected 3.25", got)
	}

	zero := NewDifficultyManager(DifficultyConfig{})
	if got := zero.EffectiveInterval(0, 5); got != 1 {
		t.Errorf("interval floor should be at least one tick, got %d", got)
	}
}
