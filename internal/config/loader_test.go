package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tetris, err := decode(GetDefaultYAML("tetris"), TetrisConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), tetris)

	pong, err := decode(GetDefaultYAML("pong"), PongConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), pong)

	assert.Nil(t, GetDefaultYAML("snake"))
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := writeFile(t, "tetris.yaml", "board:\n  width: 6\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height, "missing fields fall back to defaults")
	assert.Equal(t, 15, cfg.Timing.FallFrames)
}

func TestLoadTetrisErrors(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	cfg, err := LoadTetris(writeFile(t, "bad.yaml", "board: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse")
	assert.Equal(t, DefaultTetrisConfig(), cfg)

	_, err = LoadTetris(writeFile(t, "typo.yaml", "bord:\n  width: 4\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = LoadTetris(writeFile(t, "neg.yaml", "timing:\n  fall_frames: -1\n"))
	assert.ErrorContains(t, err, "fall_frames")
}

func TestLoadPongCustomPath(t *testing.T) {
	path := writeFile(t, "pong.yaml", "gameplay:\n  win_score: 0\nball:\n  size: 2\n")

	cfg, err := LoadPong(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Gameplay.WinScore)
	assert.Equal(t, 2, cfg.Ball.Size)
	assert.Equal(t, 160, cfg.Field.Width)
}

func TestLoadPongKeepsDefaultWinScore(t *testing.T) {
	cfg, err := LoadPong(writeFile(t, "pong.yaml", "paddle:\n  speed: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Paddle.Speed)
	assert.Equal(t, 5, cfg.Gameplay.WinScore, "an absent win_score keeps the default")
}

func TestPongValidate(t *testing.T) {
	cfg := DefaultPongConfig()
	require.NoError(t, cfg.Validate())

	cfg.Paddle.Height = cfg.Field.Height + 1
	assert.Error(t, cfg.Validate())

	cfg = DefaultPongConfig()
	cfg.Gameplay.WinScore = -1
	assert.Error(t, cfg.Validate())
}

func TestLoadWithoutCustomPathUsesSearchOrDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "tetris.yaml"), []byte("board:\n  height: 8\n"), 0o600))

	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Height)
}
