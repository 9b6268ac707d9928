package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkharms/roadrush/internal/core"
	"github.com/dkharms/roadrush/internal/platform/tui"
	"github.com/dkharms/roadrush/internal/racer"
	"github.com/dkharms/roadrush/internal/registry"
	"github.com/dkharms/roadrush/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session in the current terminal.

Controls:
  Left/Right, H/L, A/D - Move the pointer (steers the car)
  1 / 2 / 3            - Jump the pointer to a lane
  X                    - Toggle tracking lost
  P/Esc                - Pause
  R                    - Restart (after game over)
  Q/Ctrl+C             - Quit

Difficulty presets:
  easy   - More lives, slower start
  normal - Defaults
  hard   - Fewer lives, faster start

Examples:
  roadrush play
  roadrush play --preset easy
  roadrush play --config ./my-racer.yaml
  roadrush play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	racer.SetConfigPath(flagConfig)
	racer.SetDifficultyPreset(flagPreset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
