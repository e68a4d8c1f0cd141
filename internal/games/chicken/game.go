// Package chicken implements Chicken Road, a lane-crossing arcade game.
// The player guides a chicken across lanes of traffic; each crossing
// scores a point, and traffic gets faster and denser as the score grows.
package chicken

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/chicken-road/internal/config"
	"github.com/vovakirdan/chicken-road/internal/core"
	"github.com/vovakirdan/chicken-road/internal/highscore"
)

// timeScale is the movement multiplier applied on every fixed tick.
const timeScale = 1.0

// ScoreKeeper loads and persists the high score.
// *highscore.Store satisfies it.
type ScoreKeeper interface {
	Load() highscore.Result
	Save(score int) highscore.Result
}

// Game implements the Chicken Road simulation.
// It is not safe for concurrent use; the platform drives it from one goroutine.
type Game struct {
	cfg        config.ChickenConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	keeper     ScoreKeeper

	rng    *rand.Rand
	lanes  []*Lane
	player *Player
	held   core.HeldInput

	phase          core.Phase
	score          int
	lives          int
	highScore      int
	difficultyStep int
	frames         int // Ticks simulated since the last Start

	lastLoad highscore.Result
	lastSave highscore.Result
	events   []core.Event
}

// New creates a game with the given configuration. The high score is read
// from keeper once, here; keeper may be nil to disable persistence.
func New(cfg config.ChickenConfig, keeper ScoreKeeper) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		keeper:     keeper,
		runtime:    core.DefaultConfig(),
	}
	if keeper != nil {
		g.lastLoad = keeper.Load()
		g.highScore = g.lastLoad.ScoreOrZero()
	}
	g.build()
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "chicken"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chicken Road"
}

// Reset rebuilds the world from the runtime config and returns to the intro.
// The seed makes traffic reproducible.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.build()
	g.phase = core.PhaseIntro
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.difficultyStep = 0
	g.frames = 0
	g.held.ReleaseAll()
	g.events = g.events[:0]
}

// build creates the RNG, lanes and player.
func (g *Game) build() {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))

	g.lanes = make([]*Lane, g.cfg.Lanes.Count)
	for i := range g.lanes {
		g.lanes[i] = NewLane(i, &g.cfg, g.difficulty, g.rng)
	}

	spawnX, spawnY := g.cfg.PlayerSpawn()
	bounds := core.NewRect(0, 0, g.cfg.World.Width, g.cfg.World.Height)
	g.player = NewPlayer(spawnX, spawnY, g.cfg.Player.Size, bounds)
	g.lives = g.cfg.Gameplay.Lives
}

// Start begins a new game from any phase.
func (g *Game) Start() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.difficultyStep = 0
	g.frames = 0
	for _, lane := range g.lanes {
		lane.Restore()
	}
	g.player.ResetPosition()
	g.player.SetAlive(true)
	g.phase = core.PhasePlaying
}

// TogglePause flips between playing and paused. Ignored in other phases.
func (g *Game) TogglePause() {
	switch g.phase {
	case core.PhasePlaying:
		g.phase = core.PhasePaused
	case core.PhasePaused:
		g.phase = core.PhasePlaying
	}
}

// Press marks a movement direction as held until Release.
func (g *Game) Press(d core.Direction) {
	g.held.Press(d)
}

// Release ends a held movement direction.
func (g *Game) Release(d core.Direction) {
	g.held.Release(d)
}

// ReleaseAll drops every held direction.
func (g *Game) ReleaseAll() {
	g.held.ReleaseAll()
}

// Step applies the frame's discrete actions, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.Start()
	case in.Has(core.ActionStart) && !g.IsPlaying():
		g.Start()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	g.Tick()

	return core.StepResult{
		State:  g.State(),
		Events: slices.Clone(g.events),
	}
}

// Tick advances the simulation by one fixed frame.
// It does nothing unless the game is playing and not paused.
func (g *Game) Tick() {
	g.events = g.events[:0]
	if g.phase != core.PhasePlaying {
		return
	}

	g.frames++

	if dx, dy := g.held.Delta(g.cfg.Player.Speed); dx != 0 || dy != 0 {
		g.player.Move(dx, dy)
	}

	modifier := g.difficulty.SpawnModifier(g.difficultyStep, g.score)
	for _, lane := range g.lanes {
		lane.Tick(timeScale, modifier)
	}

	if g.checkCollision() {
		g.lives--
		g.emit(core.EventCollision, g.lives)
		if g.lives <= 0 {
			g.gameOver()
		} else {
			g.player.ResetPosition()
		}
	}

	if g.phase == core.PhasePlaying && g.player.Rect().Y <= g.cfg.CrossingLine() {
		g.cross()
	}
}

// checkCollision scans lanes overlapping the player, in lane order and then
// obstacle insertion order, and stops at the first hit.
func (g *Game) checkCollision() bool {
	pr := g.player.Rect()
	for _, lane := range g.lanes {
		if !pr.Intersects(lane.Band()) {
			continue
		}
		for _, o := range lane.Obstacles() {
			if pr.Intersects(o.Rect()) {
				return true
			}
		}
	}
	return false
}

// cross scores a point, escalates difficulty every few points, and sends
// the chicken back to the start.
func (g *Game) cross() {
	g.score++
	g.emit(core.EventCrossing, g.score)

	if g.difficulty.StepDue(g.score) {
		g.difficultyStep++
		for _, lane := range g.lanes {
			lane.ApplyDifficultyStep()
		}
		g.emit(core.EventDifficultyUp, g.difficultyStep)
	}

	g.player.ResetPosition()
}

// gameOver ends the session and persists a new high score.
// Persistence failures are kept in LastSave and never interrupt the game.
func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.player.SetAlive(false)
	g.emit(core.EventGameOver, g.score)

	if g.score > g.highScore {
		g.highScore = g.score
		g.emit(core.EventNewHighScore, g.score)
		if g.keeper != nil {
			g.lastSave = g.keeper.Save(g.highScore)
		}
	}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// IsPlaying reports whether a session is in progress, paused or not.
func (g *Game) IsPlaying() bool {
	return g.phase == core.PhasePlaying || g.phase == core.PhasePaused
}

// Phase returns the current coarse state.
func (g *Game) Phase() core.Phase { return g.phase }

// Score returns the number of crossings this session.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int { return g.highScore }

// DifficultyStep returns how many difficulty steps have been applied.
func (g *Game) DifficultyStep() int { return g.difficultyStep }

// Frames returns the ticks simulated since the last Start.
func (g *Game) Frames() int { return g.frames }

// Lanes returns the traffic lanes, top to bottom.
func (g *Game) Lanes() []*Lane { return g.lanes }

// Player returns the chicken.
func (g *Game) Player() *Player { return g.player }

// Config returns the configuration the game runs with.
func (g *Game) Config() config.ChickenConfig { return g.cfg }

// LastLoad returns the result of reading the high score at startup.
func (g *Game) LastLoad() highscore.Result { return g.lastLoad }

// LastSave returns the result of the most recent high score save.
func (g *Game) LastSave() highscore.Result { return g.lastSave }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          g.score,
		Lives:          g.lives,
		HighScore:      g.highScore,
		DifficultyStep: g.difficultyStep,
		Frames:         g.frames,
		Phase:          g.phase,
		GameOver:       g.phase == core.PhaseGameOver,
		Paused:         g.phase == core.PhasePaused,
	}
}
