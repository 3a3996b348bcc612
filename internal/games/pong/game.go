// Package pong implements a two-paddle ball game against an AI opponent.
//
// The simulation runs on an integer field (160x120 units by default) and is
// scaled to the terminal only when rendering. The player holds Up/Down to
// move the left paddle; the right paddle follows the ball.
package pong

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Side identifies a paddle.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

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
func WithConfig(cfg config.PongConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// Game implements the Pong game logic.
type Game struct {
	cfg config.PongConfig

	playerY int // top of the left paddle
	aiY     int // top of the right paddle

	ballX, ballY   int // top-left of the ball
	ballVX, ballVY int

	score   int
	aiScore int

	gameOver bool
	paused   bool
	winner   Side
}

// New creates a game using the configuration at the path set by
// SetConfigPath. Invalid files fall back to built-in defaults.
func New(opts ...Option) *Game {
	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	g.restart()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a new match. The simulation does not depend on the runtime
// config; the field is scaled to the screen when rendering.
func (g *Game) Reset(core.RuntimeConfig) {
	g.restart()
}

func (g *Game) restart() {
	f, p, b := g.cfg.Field, g.cfg.Paddle, g.cfg.Ball

	g.playerY = f.Height/2 - p.Height/2
	g.aiY = f.Height/2 - p.Height/2
	g.ballX = f.Width/2 - b.Size/2
	g.ballY = f.Height/2 - b.Size/2
	g.ballVX = b.SpeedX
	g.ballVY = b.SpeedY
	g.score = 0
	g.aiScore = 0
	g.gameOver = false
	g.paused = false
	g.winner = SideNone
}

// Step advances the game by one tick.
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

	g.movePlayer(in)
	g.moveAI()
	g.moveBall()

	return core.StepResult{State: g.State()}
}

func (g *Game) maxPaddleY() int {
	return g.cfg.Field.Height - g.cfg.Paddle.Height
}

func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Paddle.Speed
	if in.Held(core.ActionUp) {
		g.playerY = core.Clamp(g.playerY-speed, 0, g.maxPaddleY())
	}
	if in.Held(core.ActionDown) {
		g.playerY = core.Clamp(g.playerY+speed, 0, g.maxPaddleY())
	}
}

// moveAI steps the AI paddle toward the ball's top edge. The paddle rests
// while the ball's top is within its span.
func (g *Game) moveAI() {
	speed := g.cfg.Paddle.Speed
	switch {
	case g.ballY < g.aiY:
		g.aiY = core.Clamp(g.aiY-speed, 0, g.maxPaddleY())
	case g.ballY > g.aiY+g.cfg.Paddle.Height:
		g.aiY = core.Clamp(g.aiY+speed, 0, g.maxPaddleY())
	}
}

func (g *Game) moveBall() {
	f, b := g.cfg.Field, g.cfg.Ball

	g.ballX += g.ballVX
	g.ballY += g.ballVY

	if g.ballY <= 0 || g.ballY+b.Size >= f.Height {
		g.ballVY = -g.ballVY
	}

	ball := g.ballRect()

	// A paddle catches the ball as soon as the ball reaches its face, even
	// when a fast ball has already passed it.
	player := g.paddleRect(SidePlayer)
	if ball.X <= player.Right() && ball.OverlapsY(player) {
		g.ballVX = -g.ballVX
		g.ballX = player.Right()
	}

	ai := g.paddleRect(SideAI)
	if ball.Right() >= ai.X && ball.OverlapsY(ai) {
		g.ballVX = -g.ballVX
		g.ballX = ai.X - b.Size
	}

	switch {
	case g.ballX < 0:
		g.aiScore++
		g.serve()
	case g.ballX > f.Width:
		g.score++
		g.serve()
	}

	if win := g.cfg.Gameplay.WinScore; win > 0 {
		switch {
		case g.score >= win:
			g.gameOver, g.winner = true, SidePlayer
		case g.aiScore >= win:
			g.gameOver, g.winner = true, SideAI
		}
	}
}

// serve recenters the ball and sends it back toward the side that scored,
// keeping the vertical direction at nominal speed.
func (g *Game) serve() {
	f, b := g.cfg.Field, g.cfg.Ball

	g.ballX = f.Width/2 - b.Size/2
	g.ballY = f.Height/2 - b.Size/2
	g.ballVX = -g.ballVX
	if g.ballVY > 0 {
		g.ballVY = b.SpeedY
	} else {
		g.ballVY = -b.SpeedY
	}
}

func (g *Game) ballRect() core.Rect {
	return core.NewRect(g.ballX, g.ballY, g.cfg.Ball.Size, g.cfg.Ball.Size)
}

func (g *Game) paddleRect(side Side) core.Rect {
	p := g.cfg.Paddle
	if side == SideAI {
		return core.NewRect(g.cfg.Field.Width-p.Width, g.aiY, p.Width, p.Height)
	}
	return core.NewRect(0, g.playerY, p.Width, p.Height)
}

// State returns the current game state. The reported score is the player's.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
