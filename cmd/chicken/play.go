package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chicken-road/internal/config"
	"github.com/vovakirdan/chicken-road/internal/core"
	"github.com/vovakirdan/chicken-road/internal/games/chicken"
	"github.com/vovakirdan/chicken-road/internal/highscore"
	"github.com/vovakirdan/chicken-road/internal/platform/tui"
	"github.com/vovakirdan/chicken-road/internal/sound"
	"github.com/vovakirdan/chicken-road/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Chicken Road",
	Long: `Start a game of Chicken Road.

Controls:
  Arrows/WASD  - Move (hold to keep moving)
  Space        - Start
  P            - Pause
  R            - Restart
  Q/Esc        - Quit
  Ctrl+S       - Save a screenshot

Difficulty options:
  easy   - More lives, slower and sparser traffic
  normal - Config as loaded, escalating with score
  hard   - Fewer lives, faster and denser traffic
  fixed  - No escalation, traffic stays at its starting level

Examples:
  chicken play
  chicken play --difficulty easy
  chicken play --sound
  chicken play --sound --volume 0.5
  chicken play --config ./my-chicken.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the game flags on cmd.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("difficulty %s: %w", preset, err)
	}

	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	var sm *sound.Manager
	if flagSound {
		sm = sound.NewManager()
		sm.SetVolume(flagVolume)
		if err := sm.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
		defer sm.Close()
		logger.Debug("sound", "enabled", sm.Enabled(), "volume", flagVolume)
	}

	game := chicken.New(cfg, highscore.NewStore(flagHighScore))
	if res := game.LastLoad(); !res.OK() && res.Status != highscore.StatusNotFound {
		logger.Warn("high score not loaded", "status", res.Status, "err", res.Err)
	}

	err = tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:       store,
		Sound:       sm,
		Logger:      logger,
		Preset:      presetName(preset),
		HoldRelease: time.Duration(cfg.Controls.HoldReleaseMS) * time.Millisecond,
		FirstRepeat: time.Duration(cfg.Controls.FirstRepeatMS) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// presetName returns the name recorded with each run.
func presetName(p config.DifficultyPreset) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return string(p)
}

// openLogger returns a file logger for path, or a silent one when path
// is empty or cannot be opened.
func openLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chicken",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }
}
