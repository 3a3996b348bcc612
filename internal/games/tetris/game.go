// Package tetris implements the falling-block puzzle game.
//
// The simulation is a two-state machine (playing, game over) advanced once
// per tick by Step. Pieces fall under gravity every FallFrames ticks, can be
// shifted, rotated clockwise and soft-dropped, and lock into the board when
// they can no longer fall. Full rows are cleared and scored. A spawn that
// collides ends the game; only a restart leaves that state.
package tetris

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// SoftDropPoints is awarded for every row a piece is soft-dropped.
const SoftDropPoints = 1

// configPath is the YAML file used by games created through the registry.
var configPath string

// SetConfigPath sets the config file used by New. Empty means the default
// search order.
func SetConfigPath(path string) {
	configPath = path
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig replaces the loaded configuration.
func WithConfig(cfg config.TetrisConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithPicker makes the game draw pieces from p instead of a seeded random
// source. The picker survives Reset and restarts.
func WithPicker(p PiecePicker) Option {
	return func(g *Game) {
		g.picker = p
		g.fixedPicker = true
	}
}

// Game holds the complete simulation state.
type Game struct {
	cfg         config.TetrisConfig
	picker      PiecePicker
	fixedPicker bool

	board     *Board
	piece     Piece
	fallTimer int
	score     int
	lines     int
	gameOver  bool
	paused    bool
}

// New creates a game using the configuration at the path set by
// SetConfigPath. Invalid files fall back to built-in defaults; the CLI
// reports load errors before a game is created.
func New(opts ...Option) *Game {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.picker == nil {
		g.picker = NewRandomPicker(0)
	}
	g.restart()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game. The runtime seed reseeds the piece picker unless
// one was supplied with WithPicker.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedPicker {
		g.picker = NewRandomPicker(runtime.Seed)
	}
	g.restart()
}

// restart restores the initial state: empty board, zero score, new piece.
func (g *Game) restart() {
	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.fallTimer = 0
	g.score = 0
	g.lines = 0
	g.gameOver = false
	g.paused = false
	g.spawn()
}

// spawn places a new piece centered on the top row. If it does not fit,
// the game is over and the piece stays where it was placed.
func (g *Game) spawn() {
	kind := g.picker.Next()
	shape := kind.BaseShape()
	g.piece = Piece{
		Kind:  kind,
		Shape: shape,
		X:     g.board.Width()/2 - shape.Width()/2,
		Y:     0,
	}
	if g.board.Collides(g.piece.Shape, g.piece.X, g.piece.Y) {
		g.gameOver = true
	}
}

// Move shifts the active piece by (dx, dy) if the destination is free.
// It reports whether the piece moved.
func (g *Game) Move(dx, dy int) bool {
	if g.gameOver {
		return false
	}
	x, y := g.piece.X+dx, g.piece.Y+dy
	if g.board.Collides(g.piece.Shape, x, y) {
		return false
	}
	g.piece.X, g.piece.Y = x, y
	return true
}

// Rotate turns the active piece clockwise in place if the result fits.
// There is no kick: a blocked rotation is simply dropped.
func (g *Game) Rotate() bool {
	if g.gameOver {
		return false
	}
	rotated := g.piece.Shape.Rotate()
	if g.board.Collides(rotated, g.piece.X, g.piece.Y) {
		return false
	}
	g.piece.Shape = rotated
	return true
}

// lockAndClear commits the piece, scores cleared rows and spawns the next
// piece. It returns the number of rows cleared.
func (g *Game) lockAndClear() int {
	g.board.Lock(g.piece)
	cleared := g.board.ClearLines()
	g.lines += cleared
	g.score += ScoreForLines(cleared)
	g.spawn()
	return cleared
}

// Step advances the game by one tick.
//
// Order within a tick: quit, restart (game over only), pause, horizontal
// moves, rotation, soft drop, gravity. A successful soft drop resets the
// gravity timer so the piece does not fall twice in one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.Move(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.Move(1, 0)
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionRotate) {
		g.Rotate()
	}

	if in.Held(core.ActionDown) && g.Move(0, 1) {
		g.score += SoftDropPoints
		g.fallTimer = 0
	}

	g.fallTimer++
	if g.fallTimer >= g.cfg.Timing.FallFrames {
		g.fallTimer = 0
		if !g.Move(0, 1) {
			g.lockAndClear()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Lines returns the number of rows cleared since the last restart.
func (g *Game) Lines() int {
	return g.lines
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}
