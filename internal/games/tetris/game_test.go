package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// newGame creates a w×h game that spawns the given kinds in order.
func newGame(t *testing.T, w, h int, kinds ...Kind) *Game {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	cfg.Board.Width, cfg.Board.Height = w, h
	return New(WithConfig(cfg), WithPicker(NewSequencePicker(kinds...)))
}

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.SetHeld(a)
	}
	return f
}

func idle(g *Game, ticks int) {
	for range ticks {
		g.Step(core.NewInputFrame())
	}
}

func TestSpawnCentersPieceOnTopRow(t *testing.T) {
	tests := []struct {
		kind  Kind
		wantX int
	}{
		{KindI, 3},
		{KindO, 4},
		{KindT, 4},
		{KindZ, 4},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g := newGame(t, 10, 20, tc.kind)
			assert.Equal(t, tc.kind, g.piece.Kind)
			assert.Equal(t, tc.wantX, g.piece.X)
			assert.Equal(t, 0, g.piece.Y)
			assert.False(t, g.State().GameOver)
		})
	}
}

func TestOPieceFallsToFloorAndLocks(t *testing.T) {
	g := newGame(t, 10, 20, KindO)

	// The O is two rows tall, so it rests on the floor at row 18.
	for i := range 18 {
		require.True(t, g.Move(0, 1), "move %d", i+1)
	}
	assert.False(t, g.Move(0, 1), "floor must stop the piece")
	assert.Equal(t, 18, g.piece.Y)

	idle(g, g.cfg.Timing.FallFrames)

	for _, cell := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, KindO.Color(), g.board.At(cell[0], cell[1]))
	}
	assert.Equal(t, 0, g.State().Score, "no full row, no soft drop")
	assert.Equal(t, 0, g.piece.Y, "next piece spawned at the top")
}

func TestSoftDropToFloorScoresPerRow(t *testing.T) {
	g := newGame(t, 10, 20, KindO)

	for range 18 {
		g.Step(held(core.ActionDown))
	}
	assert.Equal(t, 18, g.piece.Y)
	assert.Equal(t, 18, g.State().Score)

	// Further soft drops fail; gravity locks the piece once the timer expires.
	for range g.cfg.Timing.FallFrames - 1 {
		g.Step(held(core.ActionDown))
	}
	assert.Equal(t, KindO.Color(), g.board.At(4, 19))
	assert.Equal(t, 18, g.State().Score)
	assert.Equal(t, 0, g.piece.Y)
}

func TestSoftDropResetsFallTimer(t *testing.T) {
	g := newGame(t, 10, 20, KindT)
	g.fallTimer = g.cfg.Timing.FallFrames - 1

	g.Step(held(core.ActionDown))

	assert.Equal(t, 1, g.piece.Y, "soft drop replaces this tick's gravity step")
	assert.Equal(t, 1, g.fallTimer)
	assert.Equal(t, SoftDropPoints, g.State().Score)
}

func TestSoftDropIsLevelTriggered(t *testing.T) {
	g := newGame(t, 10, 20, KindT)

	g.Step(pressed(core.ActionDown)) // pressed implies held
	g.Step(held(core.ActionDown))
	g.Step(held(core.ActionDown))

	assert.Equal(t, 3, g.piece.Y)
	assert.Equal(t, 3, g.State().Score)
}

func TestGravityStepsEveryFallFrames(t *testing.T) {
	g := newGame(t, 10, 20, KindT)

	idle(g, g.cfg.Timing.FallFrames-1)
	assert.Equal(t, 0, g.piece.Y)

	idle(g, 1)
	assert.Equal(t, 1, g.piece.Y)
	assert.Equal(t, 0, g.fallTimer)
}

func TestHorizontalMovesAreEdgeTriggered(t *testing.T) {
	g := newGame(t, 10, 20, KindO)

	g.Step(pressed(core.ActionLeft))
	assert.Equal(t, 3, g.piece.X)

	g.Step(held(core.ActionLeft))
	assert.Equal(t, 3, g.piece.X, "holding does not repeat the move")

	g.Step(pressed(core.ActionLeft, core.ActionRight))
	assert.Equal(t, 3, g.piece.X, "left then right cancel out")

	for range 10 {
		g.Step(pressed(core.ActionRight))
	}
	assert.Equal(t, 8, g.piece.X, "right wall stops the piece")
}

func TestRotateAppliesOrIsDiscarded(t *testing.T) {
	g := newGame(t, 10, 20, KindI)

	g.Step(pressed(core.ActionRotate))
	assert.Equal(t, 4, g.piece.Shape.Height(), "I stands up")

	for range 10 {
		g.Move(1, 0)
	}
	require.Equal(t, 9, g.piece.X)
	assert.False(t, g.Rotate(), "no wall kick at the right wall")
	assert.Equal(t, 4, g.piece.Shape.Height())

	g.Step(pressed(core.ActionUp))
	assert.Equal(t, 1, g.piece.Shape.Width(), "up is also rotate and is still blocked")
}

func TestRotateBlockedByShortWell(t *testing.T) {
	g := newGame(t, 10, 3, KindI)
	assert.False(t, g.Rotate(), "a vertical I needs four rows")
	assert.True(t, g.piece.Shape.Equal(KindI.BaseShape()))
}

func TestSingleLineClear(t *testing.T) {
	g := newGame(t, 10, 20, KindI)
	fillRow(g.board, 19, 3, 4, 5, 6)
	g.board.Set(0, 18, core.ColorWhite)

	for range 19 {
		require.True(t, g.Move(0, 1))
	}
	idle(g, g.cfg.Timing.FallFrames)

	assert.Equal(t, 100, g.State().Score)
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, core.ColorWhite, g.board.At(0, 19), "rows above shift down")
	for x := 1; x < 10; x++ {
		assert.Equal(t, Empty, g.board.At(x, 19))
	}
	assert.Len(t, g.board.Rows(), 20)
}

func TestLockAndClearScoresByRowCount(t *testing.T) {
	for n := 1; n <= 4; n++ {
		g := newGame(t, 10, 20, KindI)
		for y := 20 - n; y < 20; y++ {
			fillRow(g.board, y, 0)
		}
		g.piece = Piece{Kind: KindI, Shape: KindI.BaseShape().Rotate(), X: 0, Y: 16}

		cleared := g.lockAndClear()

		assert.Equal(t, n, cleared)
		assert.Equal(t, ScoreForLines(n), g.State().Score)
		assert.Len(t, g.board.Rows(), 20)
		// Whatever part of the I did not complete a row is left in column 0.
		for y := 0; y < 20; y++ {
			want := Empty
			if y >= 20-(4-n) {
				want = KindI.Color()
			}
			assert.Equal(t, want, g.board.At(0, y), "n=%d row=%d", n, y)
		}
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	g := newGame(t, 10, 20, KindO, KindT)
	g.board.Set(4, 1, core.ColorRed)
	g.spawn()

	require.True(t, g.State().GameOver)
	spawned := g.piece

	g.Step(pressed(core.ActionLeft, core.ActionRotate))
	g.Step(held(core.ActionDown))
	idle(g, 3*g.cfg.Timing.FallFrames)

	assert.Equal(t, spawned.X, g.piece.X)
	assert.Equal(t, spawned.Y, g.piece.Y)
	assert.False(t, g.Move(0, 1))
	assert.False(t, g.Rotate())
	assert.Equal(t, 0, g.State().Score)
	assert.Nil(t, g.View().Piece, "no piece is drawn after game over")
	assert.Equal(t, core.ColorRed, g.View().Cells[1][4])
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newGame(t, 10, 20, KindO)
	g.score = 1234
	g.board.Set(4, 0, core.ColorRed)
	g.spawn()
	require.True(t, g.State().GameOver)

	g.Step(pressed(core.ActionPause))
	assert.True(t, g.State().GameOver, "only restart leaves game over")

	g.Step(pressed(core.ActionRestart))
	st := g.State()
	assert.False(t, st.GameOver)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, Empty, g.board.At(4, 0))
	assert.NotNil(t, g.View().Piece)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newGame(t, 10, 20, KindO)
	g.Step(held(core.ActionDown))
	g.Step(pressed(core.ActionRestart))
	assert.Equal(t, 1, g.State().Score)
}

func TestTinyBoardEndsOnFirstSpawn(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 20}} {
		g := newGame(t, size[0], size[1], KindI)
		assert.True(t, g.State().GameOver, "board %dx%d", size[0], size[1])
	}
}

func TestQuitIsReportedInAnyState(t *testing.T) {
	g := newGame(t, 10, 20, KindT)
	res := g.Step(pressed(core.ActionQuit, core.ActionLeft))
	assert.True(t, res.Quit)
	assert.Equal(t, 4, g.piece.X, "nothing else runs on a quit tick")

	g.gameOver = true
	assert.True(t, g.Step(pressed(core.ActionQuit)).Quit)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newGame(t, 10, 20, KindT)
	g.Step(pressed(core.ActionPause))
	require.True(t, g.State().Paused)

	idle(g, 5*g.cfg.Timing.FallFrames)
	g.Step(held(core.ActionDown))
	assert.Equal(t, 0, g.piece.Y)

	g.Step(pressed(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestResetReseedsRandomPicker(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24}
	a, b := New(WithConfig(config.DefaultTetrisConfig())), New(WithConfig(config.DefaultTetrisConfig()))
	a.Reset(cfg)
	b.Reset(cfg)

	for range 50 {
		require.Equal(t, a.piece.Kind, b.piece.Kind)
		a.lockAndClear()
		b.lockAndClear()
		if a.State().GameOver {
			break
		}
	}
}

func TestViewIsDetached(t *testing.T) {
	g := newGame(t, 10, 20, KindT)
	v := g.View()
	assert.Equal(t, KindT.Color(), v.ColorAt(5, 0))
	assert.Equal(t, Empty, v.ColorAt(-1, 0))

	v.Cells[0][0] = core.ColorRed
	v.Piece.Shape[0][0] = true
	v.Piece.X = 0

	assert.Equal(t, Empty, g.board.At(0, 0))
	assert.False(t, g.piece.Shape[0][0])
	assert.Equal(t, 4, g.piece.X)
}

func TestRender(t *testing.T) {
	g := newGame(t, 10, 20, KindO)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "SCORE: 0")
	assert.Contains(t, out, string(BlockChar))
	assert.NotContains(t, out, "GAME OVER")

	g.board.Set(4, 1, core.ColorRed)
	g.spawn()
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "(R) to Restart")

	small := core.NewScreen(20, 10)
	g.Render(small)
	assert.True(t, strings.Contains(small.String(), "too small"))
	assert.Contains(t, small.String(), "need 22x23")

	narrow := core.NewScreen(9, 3)
	g.Render(narrow)
	assert.Equal(t, "too small", narrow.Row(1))
}

func TestRegistered(t *testing.T) {
	g := New()
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
}
