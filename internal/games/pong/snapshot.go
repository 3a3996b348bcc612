package pong

// Snapshot is a copy of the match state in field units.
type Snapshot struct {
	PlayerY int
	AIY     int
	BallX   int
	BallY   int
	BallVX  int
	BallVY  int
	Score   int
	AIScore int

	GameOver bool
	Paused   bool
	Winner   Side
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		PlayerY:  g.playerY,
		AIY:      g.aiY,
		BallX:    g.ballX,
		BallY:    g.ballY,
		BallVX:   g.ballVX,
		BallVY:   g.ballVY,
		Score:    g.score,
		AIScore:  g.aiScore,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Winner:   g.winner,
	}
}
