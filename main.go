// skyclimber is an endless climbing arcade game.
//
// Usage:
//
//	skyclimber [flags]
//
// Flags:
//
//	--config <path>     - Load tuning from a YAML file instead of prefabs/game.yaml
//	--seed <value>      - Set RNG seed for reproducible runs (0 = time based)
//	--scale <factor>    - Window scale (default: 3)
//	--debug             - Show FPS and hot reload prefabs from disk
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyclimber/prefabs"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     uint64
	flagScale    int
	flagDebug    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyclimber",
	Short: "Climb as high as the fuel lets you",
	Long: `skyclimber is a side-scrolling arcade game. Jump between platforms with
a jetpack, collect fuel and dodge the asteroids.

Controls:
  Arrow keys  - move
  Space       - jetpack / restart
  P, Escape   - pause`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game spec YAML (default: prefabs/game.yaml)")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 3, "Window scale factor")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug overlay and prefab hot reload")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runGame(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyclimber",
		Level:           level,
	})
	log.SetDefault(logger)

	if flagScale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", flagScale)
	}

	spec, err := prefabs.LoadGameSpec(flagConfig)
	if err != nil {
		logger.Error("could not load game spec", "err", err)
		return err
	}

	game, err := NewGame(spec, Options{
		ConfigPath: flagConfig,
		Seed:       flagSeed,
		Debug:      flagDebug,
	}, logger)
	if err != nil {
		logger.Error("could not start game", "err", err)
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(spec.Window.Width*flagScale, spec.Window.Height*flagScale)
	ebiten.SetWindowTitle(spec.Window.Title)
	ebiten.SetTPS(spec.Window.TPS)

	logger.Info("starting", "seed", flagSeed, "config", flagConfig, "debug", flagDebug)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
