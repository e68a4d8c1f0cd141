// chicken is a terminal lane-crossing arcade game: guide the chicken
// across the road without getting hit by traffic.
//
// Usage:
//
//	chicken                  - Play (same as "chicken play")
//	chicken play             - Play the game
//	chicken scores           - Show recorded runs
//	chicken config           - Print the default configuration
//	chicken reset-scores     - Delete run history and the high score
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set run history path (default: ~/.chicken-road/runs.db)
//	--highscore <path>  - Set high score file (default: ~/.chicken-road/highscore.txt)
//	--log <path>        - Write a debug log to this file
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chicken",
	Short: "Chicken Road - cross the road in your terminal",
	Long: `Chicken Road is a terminal arcade game. Guide the chicken from the
bottom grass to the top without touching the traffic. Every crossing
scores a point and the road gets busier as the score grows.

Available commands:
  play          - Play the game (default)
  scores        - View recorded runs
  config        - Print the default configuration
  reset-scores  - Delete run history and the high score

Examples:
  chicken
  chicken play --difficulty hard
  chicken --seed 42 play
  chicken scores --plain`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chicken-road/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.chicken-road/highscore.txt", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Playing is the default action
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
