package config

import "math"

// DifficultyManager computes the traffic escalation derived from score
// and difficulty step. It holds no state of its own; the game owns the
// step counter and per-lane values.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SpawnModifier returns how many frames are taken off every lane's spawn
// interval: step*StepSpawnWeight + floor(score*ScoreSpawnWeight).
// A disabled manager never shortens intervals.
func (d *DifficultyManager) SpawnModifier(step, score int) int {
	if !d.cfg.Enabled {
		return 0
	}
	return step*d.cfg.StepSpawnWeight + int(math.Floor(float64(score)*d.cfg.ScoreSpawnWeight))
}

// StepDue reports whether reaching this score earns a difficulty step.
func (d *DifficultyManager) StepDue(score int) bool {
	if !d.cfg.Enabled || d.cfg.PointsPerStep <= 0 || score <= 0 {
		return false
	}
	return score%d.cfg.PointsPerStep == 0
}

// EffectiveInterval returns the spawn interval after the modifier,
// never below the configured minimum.
func (d *DifficultyManager) EffectiveInterval(base, modifier int) int {
	return max(d.MinInterval(), base-modifier)
}

// NextSpeed returns a lane base speed after one difficulty step.
func (d *DifficultyManager) NextSpeed(speed float64) float64 {
	return speed + d.cfg.SpeedIncrement
}

// NextInterval returns a lane spawn interval after one difficulty step.
func (d *DifficultyManager) NextInterval(interval int) int {
	return max(d.MinInterval(), interval-d.cfg.SpawnDecrement)
}

// MinInterval returns the spawn interval floor (at least one tick).
func (d *DifficultyManager) MinInterval() int {
	return max(1, d.cfg.MinSpawnInterval)
}
