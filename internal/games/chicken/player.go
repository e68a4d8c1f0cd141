package chicken

import "github.com/vovakirdan/chicken-road/internal/core"

// Player is the chicken. Its rectangle is always kept inside the playfield.
type Player struct {
	rect   core.Rect
	bounds core.Rect
	spawnX int
	spawnY int
	alive  bool
}

// NewPlayer creates a player of the given size at its spawn point.
func NewPlayer(spawnX, spawnY, size int, bounds core.Rect) *Player {
	p := &Player{
		rect:   core.NewRect(spawnX, spawnY, size, size),
		bounds: bounds,
		spawnX: spawnX,
		spawnY: spawnY,
		alive:  true,
	}
	p.rect = p.rect.ClampInside(bounds)
	return p
}

// Move applies a displacement and clamps the result to the playfield.
// Each side is clamped independently, so pushing diagonally into a wall
// still slides along it.
func (p *Player) Move(dx, dy int) {
	p.rect.X += dx
	p.rect.Y += dy
	p.rect = p.rect.ClampInside(p.bounds)
}

// ResetPosition puts the player back at the spawn point.
func (p *Player) ResetPosition() {
	p.rect.X = p.spawnX
	p.rect.Y = p.spawnY
	p.rect = p.rect.ClampInside(p.bounds)
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Alive reports whether the player is still in play.
func (p *Player) Alive() bool {
	return p.alive
}

// SetAlive marks the player as in play or knocked out.
func (p *Player) SetAlive(alive bool) {
	p.alive = alive
}
