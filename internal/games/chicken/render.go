package chicken

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/chicken-road/internal/core"
)

// Minimum terminal size the playfield can be drawn in.
const (
	minScreenW = 24
	minScreenH = 10
)

// Render draws the game to the screen from a snapshot. The world is
// scaled to fit below the one-line HUD, so the simulation never depends
// on terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorBrightRed)
		return
	}

	snap := g.Snapshot()
	v := newViewport(g.cfg.World.Width, g.cfg.World.Height, w, h-1)

	g.renderField(dst, v, snap.Lanes)
	renderTraffic(dst, v, snap.Lanes)
	renderPlayer(dst, v, snap.Player, snap.PlayerAlive)
	renderHUD(dst, snap)

	switch snap.Phase {
	case core.PhaseIntro:
		renderOverlay(dst,
			"CHICKEN ROAD",
			"Arrows/WASD move",
			"SPACE to start  Q to quit")
	case core.PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case core.PhaseGameOver:
		lines := []string{"Game Over", fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore)}
		if snap.Score > 0 && snap.Score == snap.HighScore {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "SPACE or R to play again")
		renderOverlay(dst, lines...)
	}
}

// viewport maps world units to screen cells below the HUD row.
type viewport struct {
	worldW, worldH int
	cols, rows     int
}

func newViewport(worldW, worldH, cols, rows int) viewport {
	return viewport{worldW: worldW, worldH: worldH, cols: cols, rows: rows}
}

func (v viewport) col(x int) int {
	return x * v.cols / v.worldW
}

func (v viewport) row(y int) int {
	return 1 + y*v.rows/v.worldH
}

// rect converts a world rectangle to screen cells. Anything with area
// covers at least one cell, so narrow cars never vanish.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// renderField draws the grass verges, the asphalt and the lane markings.
func (g *Game) renderField(dst *core.Screen, v viewport, lanes []LaneSnapshot) {
	full := core.NewRect(0, 0, g.cfg.World.Width, g.cfg.World.Height)
	dst.FillRect(v.rect(full), '░', core.ColorGreen)
	if len(lanes) == 0 {
		return
	}

	top, bottom := lanes[0].Band, lanes[len(lanes)-1].Band
	road := core.NewRect(0, top.Y, top.W, bottom.Bottom()-top.Y)
	dst.FillRect(v.rect(road), ' ', core.ColorDefault)

	// Finish line
	finish := v.row(g.cfg.CrossingLine())
	dst.DrawHLine(0, finish, dst.Width(), '·', core.ColorBrightYellow)

	// Solid road edges, dashed separators between lanes
	dst.DrawHLine(0, v.row(top.Y), dst.Width(), '━', core.ColorGray)
	dst.DrawHLine(0, v.row(bottom.Bottom()), dst.Width(), '━', core.ColorGray)
	for _, lane := range lanes[1:] {
		y := v.row(lane.Band.Y)
		for x := 0; x < dst.Width(); x++ {
			if x%4 < 2 {
				dst.SetColored(x, y, '─', core.ColorDarkGray)
			}
		}
	}
}

// renderTraffic draws every car, clipped to the playfield.
func renderTraffic(dst *core.Screen, v viewport, lanes []LaneSnapshot) {
	for _, lane := range lanes {
		for _, o := range lane.Obstacles {
			r := v.rect(o.Rect())
			dst.FillRect(r, '█', o.Color)

			// Headlight on the leading edge
			front := r.X
			if o.Direction > 0 {
				front = r.Right() - 1
			}
			dst.SetColored(front, r.Y+r.H/2, '▒', core.ColorBrightYellow)
		}
	}
}

// renderPlayer draws the chicken.
func renderPlayer(dst *core.Screen, v viewport, player core.Rect, alive bool) {
	r := v.rect(player)
	color := core.ColorBrightWhite
	if !alive {
		color = core.ColorBrightRed
	}
	dst.FillRect(r, '▓', color)

	cx, cy := r.Center()
	if alive {
		dst.SetColored(cx, cy, '>', core.ColorOrange)
	} else {
		dst.SetColored(cx, cy, 'x', core.ColorBrightRed)
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hearts := strings.Repeat("♥", max(0, snap.Lives))
	hud := fmt.Sprintf(" Chicken Road  Score: %d  Best: %d  Level: %d  Lives: %s",
		snap.Score, snap.HighScore, snap.DifficultyStep+1, hearts)

	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderOverlay draws a centered box with one message per line.
func renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	boxW := min(width+4, dst.Width())
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i, line, color)
	}
}
