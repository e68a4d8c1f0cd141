package chicken

import "github.com/vovakirdan/chicken-road/internal/core"

// Obstacle is a single car travelling along a lane.
type Obstacle struct {
	X, Y      int        // Top-left corner in world units
	Width     int        // Width in world units
	Height    int        // Height in world units
	Speed     float64    // Scalar speed in units per tick
	Direction int        // +1 moves right, -1 moves left; fixed at creation
	Color     core.Color // Visual style tag
}

// Advance moves the obstacle horizontally by speed*direction*timeScale.
// The displacement is truncated toward zero, so sub-unit speeds do not move.
func (o *Obstacle) Advance(timeScale float64) {
	o.X += int(o.Speed * float64(o.Direction) * timeScale)
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}
