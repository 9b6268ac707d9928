// roadrush is a lane-dodging arcade racer for the terminal.
//
// Usage:
//
//	roadrush play            - Play the game
//	roadrush scores          - Show the leaderboard
//	roadrush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.roadrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/dkharms/roadrush/internal/racer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// gameID is the registry ID of the shipped game.
const gameID = "racer"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Road Rush - dodge traffic in your terminal",
	Long: `Road Rush is a terminal arcade racer: slide your car between three
lanes on a scrolling road and dodge the oncoming traffic.

The car is steered by a pointer signal, normally fed by a hand-tracking
sensor. In the terminal the pointer is simulated from the keyboard:
nudge it with the arrow keys, jump it with 1/2/3, or press X to
simulate losing tracking (the car drifts back to the center lane).

Available commands:
  play     - Play the game
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  roadrush play
  roadrush play --preset hard
  roadrush scores
  roadrush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadrush/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
