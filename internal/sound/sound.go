// Package sound plays short procedural sound cues for game events.
// Audio is optional: when the speaker cannot be initialized every call
// is a silent no-op.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/chicken-road/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and a mixer that cues are added to.
// It is safe for concurrent use.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
}

// NewManager creates a manager. Nothing is audible until Init succeeds.
func NewManager() *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: 1.0,
	}
}

// Init opens the audio device. Calling it twice is a no-op.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// SetVolume scales every cue; values are clamped to [0, 1].
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = core.ClampF(v, 0, 1)
}

// Enabled reports whether cues are audible.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Play queues the cue for a game event.
func (m *Manager) Play(ev core.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	s := Cue(ev.Kind)
	if s == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(scale(s, m.volume))
	speaker.Unlock()
}

// Close silences everything and disables further cues until Init is
// called again.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Clear()
	m.mixer.Clear()
	m.initialized = false
}

// Cue builds the finite streamer for an event kind, or nil for silent kinds.
func Cue(kind core.EventKind) beep.Streamer {
	switch kind {
	case core.EventCollision:
		return beep.Take(sampleRate.N(250*time.Millisecond), NewNoiseGenerator(sampleRate, 1, 10))
	case core.EventCrossing:
		return beep.Take(sampleRate.N(120*time.Millisecond), NewToneGenerator(sampleRate, 660, 990, 0.25))
	case core.EventDifficultyUp:
		return beep.Seq(
			beep.Take(sampleRate.N(90*time.Millisecond), NewToneGenerator(sampleRate, 880, 880, 0.2)),
			beep.Take(sampleRate.N(90*time.Millisecond), NewToneGenerator(sampleRate, 1175, 1175, 0.2)),
		)
	case core.EventGameOver:
		return beep.Take(sampleRate.N(600*time.Millisecond), NewToneGenerator(sampleRate, 440, 110, 0.3))
	case core.EventNewHighScore:
		return beep.Take(sampleRate.N(300*time.Millisecond), NewToneGenerator(sampleRate, 990, 1320, 0.2))
	default:
		return nil
	}
}

// scale multiplies a streamer's samples by a constant gain.
func scale(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}

// ToneGenerator is a sine sweep from one frequency to another over
// roughly half a second, with a short attack and exponential decay.
type ToneGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	phase     float64
	pos       int
}

// NewToneGenerator creates a tone sweeping from one frequency to another.
// Pass equal frequencies for a steady tone.
func NewToneGenerator(sr beep.SampleRate, from, to, amplitude float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, from: from, to: to, amplitude: amplitude}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	sweep := float64(g.sr.N(500 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		progress := math.Min(float64(g.pos)/sweep, 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(t/0.005, 1)
		envelope := attack * math.Exp(-t*4)
		sample := g.amplitude * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// NoiseGenerator is a decaying burst of white noise over a low thump.
type NoiseGenerator struct {
	sr    beep.SampleRate
	seed  int64
	decay float64
	pos   int
}

// NewNoiseGenerator creates a noise burst. The seed makes it reproducible.
func NewNoiseGenerator(sr beep.SampleRate, seed int64, decay float64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, seed: seed, decay: decay}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		thump := 0.4 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.25*noise + thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
