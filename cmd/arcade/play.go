package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/games/pong"
	"github.com/vovakirdan/pocket-arcade/internal/games/tetris"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (tetris):
  Left/Right, A/D  - Shift piece
  Up, X, Z         - Rotate clockwise
  Down, S          - Soft drop (hold)

Controls (pong):
  Up/Down, W/S     - Move paddle (hold)

Common:
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots

Examples:
  arcade play tetris
  arcade play pong --seed 42
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureGame(logger, gameID, flagConfig); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	return tui.Run(game, storage.New(), logger, cfg)
}

// configureGame points the game at its config file before it is created.
// An explicit path must load cleanly; a broken file found on the search
// path only produces a warning because the game falls back to defaults.
func configureGame(logger *log.Logger, gameID, path string) error {
	var err error
	switch gameID {
	case "tetris":
		_, err = config.LoadTetris(path)
		tetris.SetConfigPath(path)
	case "pong":
		_, err = config.LoadPong(path)
		pong.SetConfigPath(path)
	default:
		if path != "" {
			return fmt.Errorf("game %q does not take a config file", gameID)
		}
		return nil
	}

	if err != nil {
		if path != "" {
			return err
		}
		logger.Warn("using default config", "game", gameID, "error", err)
	}
	return nil
}
