package chicken

import (
	"math"

	"github.com/vovakirdan/chicken-road/internal/core"
)

// Snapshot is a read-only copy of the game state. Render draws from it
// and determinism tests hash it.
type Snapshot struct {
	Frames         int
	Phase          core.Phase
	Score          int
	Lives          int
	HighScore      int
	DifficultyStep int

	Player      core.Rect
	PlayerAlive bool

	Lanes []LaneSnapshot
}

// LaneSnapshot holds one lane's mutable state.
type LaneSnapshot struct {
	Index         int
	Direction     int
	Band          core.Rect // Full-width area covered by the lane
	BaseSpeed     float64
	SpawnInterval int
	SpawnTimer    int
	Obstacles     []Obstacle
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:         g.frames,
		Phase:          g.phase,
		Score:          g.score,
		Lives:          g.lives,
		HighScore:      g.highScore,
		DifficultyStep: g.difficultyStep,
		Player:         g.player.Rect(),
		PlayerAlive:    g.player.Alive(),
		Lanes:          make([]LaneSnapshot, len(g.lanes)),
	}

	for i, lane := range g.lanes {
		obstacles := make([]Obstacle, len(lane.obstacles))
		copy(obstacles, lane.obstacles)
		snap.Lanes[i] = LaneSnapshot{
			Index:         lane.index,
			Direction:     lane.direction,
			Band:          lane.Band(),
			BaseSpeed:     lane.baseSpeed,
			SpawnInterval: lane.spawnInterval,
			SpawnTimer:    lane.spawnTimer,
			Obstacles:     obstacles,
		}
	}

	return snap
}

// ObstacleCount returns the number of obstacles on the road.
func (snap *Snapshot) ObstacleCount() int {
	n := 0
	for _, l := range snap.Lanes {
		n += len(l.Obstacles)
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	mix := func(h uint64, v int) uint64 {
		return h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h := uint64(17)
	h = mix(h, snap.Frames)
	h = mix(h, snap.Score)
	h = mix(h, snap.Lives)
	h = mix(h, snap.DifficultyStep)
	h = mix(h, snap.Player.X)
	h = mix(h, snap.Player.Y)

	for _, l := range snap.Lanes {
		h = h*31 + math.Float64bits(l.BaseSpeed)
		h = mix(h, l.SpawnInterval)
		h = mix(h, l.SpawnTimer)
		for _, o := range l.Obstacles {
			h = mix(h, o.X)
			h = mix(h, o.Y)
			h = mix(h, o.Width)
			h = h*31 + math.Float64bits(o.Speed)
			h = mix(h, int(o.Color))
		}
	}

	return h
}
