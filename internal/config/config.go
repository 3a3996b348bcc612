// Package config provides YAML-based game configuration for the arcade.
// Each game has a typed config with embedded defaults that users can
// override with their own YAML files.
package config

import "fmt"

// TetrisConfig contains the tunables of the falling-block game.
type TetrisConfig struct {
	Board  TetrisBoard  `yaml:"board"`
	Timing TetrisTiming `yaml:"timing"`
}

// TetrisBoard defines the size of the well in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines gravity speed.
type TetrisTiming struct {
	FallFrames int `yaml:"fall_frames"` // Ticks between gravity steps
}

// Validate reports values the simulation cannot run with.
// A tiny board is allowed: it simply ends the game on the first spawn.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 0 || c.Board.Height < 0 {
		return fmt.Errorf("config: tetris board size %dx%d is negative", c.Board.Width, c.Board.Height)
	}
	if c.Timing.FallFrames < 0 {
		return fmt.Errorf("config: tetris fall_frames %d is negative", c.Timing.FallFrames)
	}
	return nil
}

// withDefaults fills zero fields from def.
func (c TetrisConfig) withDefaults(def TetrisConfig) TetrisConfig {
	if c.Board.Width == 0 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height == 0 {
		c.Board.Height = def.Board.Height
	}
	if c.Timing.FallFrames == 0 {
		c.Timing.FallFrames = def.Timing.FallFrames
	}
	return c
}

// PongConfig contains all configuration for the paddle-ball game.
// Distances are in field units; the renderer scales the field to the terminal.
type PongConfig struct {
	Field    PongField    `yaml:"field"`
	Paddle   PongPaddle   `yaml:"paddle"`
	Ball     PongBall     `yaml:"ball"`
	Gameplay PongGameplay `yaml:"gameplay"`
}

// PongField is the logical playfield size.
type PongField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PongPaddle defines paddle geometry and speed.
type PongPaddle struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// PongBall defines ball size and per-tick speed.
type PongBall struct {
	Size   int `yaml:"size"`
	SpeedX int `yaml:"speed_x"`
	SpeedY int `yaml:"speed_y"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"` // 0 plays forever
}

// Validate reports values the simulation cannot run with.
func (c PongConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: pong field %dx%d must be positive", c.Field.Width, c.Field.Height)
	case c.Paddle.Height <= 0 || c.Paddle.Height > c.Field.Height:
		return fmt.Errorf("config: pong paddle height %d must fit the field", c.Paddle.Height)
	case c.Ball.Size <= 0 || c.Ball.Size > c.Field.Height:
		return fmt.Errorf("config: pong ball size %d must fit the field", c.Ball.Size)
	case c.Gameplay.WinScore < 0:
		return fmt.Errorf("config: pong win_score %d is negative", c.Gameplay.WinScore)
	}
	return nil
}

func (c PongConfig) withDefaults(def PongConfig) PongConfig {
	if c.Field.Width == 0 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Height == 0 {
		c.Field.Height = def.Field.Height
	}
	if c.Paddle.Width == 0 {
		c.Paddle.Width = def.Paddle.Width
	}
	if c.Paddle.Height == 0 {
		c.Paddle.Height = def.Paddle.Height
	}
	if c.Paddle.Speed == 0 {
		c.Paddle.Speed = def.Paddle.Speed
	}
	if c.Ball.Size == 0 {
		c.Ball.Size = def.Ball.Size
	}
	if c.Ball.SpeedX == 0 {
		c.Ball.SpeedX = def.Ball.SpeedX
	}
	if c.Ball.SpeedY == 0 {
		c.Ball.SpeedY = def.Ball.SpeedY
	}
	return c
}
