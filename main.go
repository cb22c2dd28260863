package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cartpole/prefabs"
	"github.com/spf13/cobra"
)

var (
	debugLog   bool
	prefabsDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cartpole",
		Short:        "wheeled carriage balancing an inverted pendulum",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debugLog {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			prefabs.SetDir(prefabsDir)
		},
		RunE: runWindow,
	}

	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&prefabsDir, "prefabs", "prefabs", "spec directory read before the embedded specs")

	rootCmd.AddCommand(newHeadlessCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("cartpole", "error", err)
		os.Exit(1)
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	game, err := NewGame(slog.Default())
	if err != nil {
		return err
	}
	defer func() {
		if err := game.Close(); err != nil {
			slog.Warn("close game", "error", err)
		}
	}()

	screen := game.specs.World.Screen
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(screen.Title)

	return ebiten.RunGame(game)
}
