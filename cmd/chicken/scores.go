package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chicken-road/internal/highscore"
	"github.com/vovakirdan/chicken-road/internal/platform/tui"
	"github.com/vovakirdan/chicken-road/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagRecent bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best and most recent runs.

The interactive view switches between best and recent runs with Tab.
Use --plain to print a table instead, e.g. for scripts, and --id to
show one run in detail.

Examples:
  chicken scores
  chicken scores --plain
  chicken scores --plain --recent --limit 5
  chicken scores --id 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var resetCmd = &cobra.Command{
	Use:   "reset-scores",
	Short: "Delete run history and the high score",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs as text instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List recent runs instead of the best with --plain")
	scoresCmd.Flags().StringVar(&flagRunID, "id", "", "Show a single run by its id")
}

func runScores(cmd *cobra.Command, args []string) error {
	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagRunID != "" {
		run, err := store.RunByID(flagRunID)
		if err != nil {
			return fmt.Errorf("retrieving run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("no run with id %q", flagRunID)
		}
		fmt.Print(tui.FormatRun(*run, flagFPS))
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagFPS, width, height)
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Print(tui.FormatRuns(runs, flagFPS))

	// Show high score, falling back to the history when the file is missing
	best, err := store.BestScore()
	if err != nil {
		return err
	}
	if res := highscore.NewStore(flagHighScore).Load(); res.OK() {
		best = max(best, res.Score)
	}
	if best > 0 {
		fmt.Printf("\nBest: %d\n", best)
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		return err
	}

	hs := highscore.NewStore(flagHighScore)
	if res := hs.Clear(); !res.OK() {
		return res.Err
	}

	fmt.Printf("Deleted run history %s and high score %s\n", flagDBPath, hs.Path())
	return nil
}
