package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultTetrisConfig returns the built-in falling-block configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Timing: TetrisTiming{
			FallFrames: 15,
		},
	}
}

// DefaultPongConfig returns the built-in paddle-ball configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: PongField{
			Width:  160,
			Height: 120,
		},
		Paddle: PongPaddle{
			Width:  2,
			Height: 20,
			Speed:  2,
		},
		Ball: PongBall{
			Size:   4,
			SpeedX: 2,
			SpeedY: 2,
		},
		Gameplay: PongGameplay{
			WinScore: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
