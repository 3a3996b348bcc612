package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListShowsRegisteredGames(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	runList(listCmd, nil)

	assert.Contains(t, out.String(), "tetris  Tetris")
	assert.Contains(t, out.String(), "pong    Pong")
}

func TestPlayRejectsUnknownGame(t *testing.T) {
	err := runPlay(playCmd, []string{"snake"})
	assert.ErrorContains(t, err, `unknown game "snake"`)
}

func TestConfigureGame(t *testing.T) {
	logger := log.New(io.Discard)
	dir := t.TempDir()

	good := filepath.Join(dir, "tetris.yaml")
	require.NoError(t, os.WriteFile(good, []byte("board:\n  width: 8\n"), 0o600))
	assert.NoError(t, configureGame(logger, "tetris", good))

	bad := filepath.Join(dir, "pong.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field:\n  width: -1\n"), 0o600))
	assert.Error(t, configureGame(logger, "pong", bad))

	assert.Error(t, configureGame(logger, "tetris", filepath.Join(dir, "missing.yaml")))
	assert.NoError(t, configureGame(logger, "tetris", ""))

	t.Cleanup(func() { _ = configureGame(logger, "tetris", "") })
}

func TestRuntimeConfigValidatesFlags(t *testing.T) {
	defer func(fps, hold, delay int, seed int64) {
		flagFPS, flagHold, flagRepeatDelay, flagSeed = fps, hold, delay, seed
	}(flagFPS, flagHold, flagRepeatDelay, flagSeed)

	flagFPS, flagHold = 0, 6
	_, err := runtimeConfig()
	assert.Error(t, err)

	flagFPS, flagHold, flagRepeatDelay = 30, 6, 0
	_, err = runtimeConfig()
	assert.ErrorContains(t, err, "--repeat-delay")

	flagFPS, flagHold, flagRepeatDelay, flagSeed = 30, 4, 20, 0
	cfg, err := runtimeConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, 4, cfg.HoldTicks)
	assert.Equal(t, 20, cfg.RepeatDelayTicks)
	assert.Zero(t, cfg.Seed, "an unset seed is picked when the game starts")

	flagSeed = 7
	cfg, err = runtimeConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	defer func(l string) { flagLogLevel = l }(flagLogLevel)

	flagLogLevel = "loud"
	_, _, err := newLogger()
	assert.Error(t, err)
}
