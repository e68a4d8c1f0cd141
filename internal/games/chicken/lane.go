package chicken

import (
	"math/rand"

	"github.com/vovakirdan/chicken-road/internal/config"
	"github.com/vovakirdan/chicken-road/internal/core"
)

// Lane is a horizontal band of road with traffic moving in one direction.
// Each lane runs its own spawn timer, so traffic across lanes stays
// unsynchronized without a global scheduler.
type Lane struct {
	index     int
	top       int
	height    int
	direction int

	baseSpeed     float64
	spawnInterval int // Frames between spawns before the difficulty modifier
	spawnTimer    int // Frames since the last spawn

	// Values restored when a new game starts
	initialSpeed    float64
	initialInterval int

	obstacles []Obstacle

	rng        *rand.Rand
	cfg        *config.ChickenConfig
	difficulty *config.DifficultyManager
	palette    []core.Color
}

// NewLane creates the lane with the given index. Even lanes drive right,
// odd lanes drive left; lower lanes are a bit faster and busier.
func NewLane(index int, cfg *config.ChickenConfig, diff *config.DifficultyManager, rng *rand.Rand) *Lane {
	direction := 1
	if index%2 != 0 {
		direction = -1
	}

	speed := cfg.Traffic.BaseSpeed + float64(index)*cfg.Lanes.SpeedStep
	interval := max(diff.MinInterval(), cfg.Traffic.BaseSpawnInterval-index*cfg.Lanes.SpawnStep)

	return &Lane{
		index:           index,
		top:             cfg.LaneTop(index),
		height:          cfg.Lanes.Height,
		direction:       direction,
		baseSpeed:       speed,
		spawnInterval:   interval,
		initialSpeed:    speed,
		initialInterval: interval,
		obstacles:       make([]Obstacle, 0, 8),
		rng:             rng,
		cfg:             cfg,
		difficulty:      diff,
		palette:         cfg.Traffic.PaletteColors(),
	}
}

// Tick advances the lane by one frame: moves obstacles, removes the ones
// that have left the screen, and spawns a new one when the timer expires.
func (l *Lane) Tick(timeScale float64, spawnRateModifier int) {
	for i := range l.obstacles {
		l.obstacles[i].Advance(timeScale)
	}

	worldW := l.cfg.World.Width
	margin := l.cfg.Lanes.CullMargin
	kept := l.obstacles[:0]
	for _, o := range l.obstacles {
		if l.direction > 0 && o.X >= worldW+margin {
			continue
		}
		if l.direction < 0 && o.X <= -margin {
			continue
		}
		kept = append(kept, o)
	}
	l.obstacles = kept

	l.spawnTimer++
	if l.spawnTimer >= l.EffectiveInterval(spawnRateModifier) {
		l.Spawn()
		l.spawnTimer = 0
	}
}

// EffectiveInterval returns the spawn interval after the difficulty
// modifier, never below the configured minimum.
func (l *Lane) EffectiveInterval(spawnRateModifier int) int {
	return l.difficulty.EffectiveInterval(l.spawnInterval, spawnRateModifier)
}

// Spawn creates one obstacle just off the lane's entry edge.
func (l *Lane) Spawn() {
	tr := l.cfg.Traffic

	width := tr.MinWidth + l.rng.Intn(tr.MaxWidth-tr.MinWidth+1)
	height := l.height - l.cfg.Lanes.Padding
	y := l.top + (l.height-height)/2
	variation := tr.MinSpeedVariation + l.rng.Float64()*(tr.MaxSpeedVariation-tr.MinSpeedVariation)
	offset := tr.MinOffset + l.rng.Intn(tr.MaxOffset-tr.MinOffset+1)

	x := l.cfg.World.Width + offset
	if l.direction > 0 {
		x = -width - offset
	}

	l.obstacles = append(l.obstacles, Obstacle{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Speed:     l.baseSpeed * variation,
		Direction: l.direction,
		Color:     l.palette[l.rng.Intn(len(l.palette))],
	})
}

// ApplyDifficultyStep makes the lane faster and busier.
func (l *Lane) ApplyDifficultyStep() {
	l.baseSpeed = l.difficulty.NextSpeed(l.baseSpeed)
	l.spawnInterval = l.difficulty.NextInterval(l.spawnInterval)
}

// Clear removes all obstacles and zeroes the spawn timer.
func (l *Lane) Clear() {
	l.obstacles = l.obstacles[:0]
	l.spawnTimer = 0
}

// Restore clears the lane and undoes all difficulty steps.
func (l *Lane) Restore() {
	l.Clear()
	l.baseSpeed = l.initialSpeed
	l.spawnInterval = l.initialInterval
}

// Band returns the full-width rectangle covered by the lane.
func (l *Lane) Band() core.Rect {
	return core.NewRect(0, l.top, l.cfg.World.Width, l.height)
}

// Obstacles returns the lane's obstacles in insertion order.
func (l *Lane) Obstacles() []Obstacle {
	return l.obstacles
}

// Index returns the lane's position, 0 being the top lane.
func (l *Lane) Index() int { return l.index }

// Direction returns +1 for rightward traffic and -1 for leftward traffic.
func (l *Lane) Direction() int { return l.direction }

// BaseSpeed returns the current base speed of new obstacles.
func (l *Lane) BaseSpeed() float64 { return l.baseSpeed }

// SpawnInterval returns the interval before the difficulty modifier.
func (l *Lane) SpawnInterval() int { return l.spawnInterval }

// SpawnTimer returns the frames elapsed since the last spawn.
func (l *Lane) SpawnTimer() int { return l.spawnTimer }
