package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the falling-block configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	def := DefaultTetrisConfig()
	cfg, err := load(customPath, "tetris.yaml", defaultTetrisYAML, def)
	if err != nil {
		return def, err
	}
	cfg = cfg.withDefaults(def)
	if err := cfg.Validate(); err != nil {
		return def, err
	}
	return cfg, nil
}

// LoadPong loads the paddle-ball configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	def := DefaultPongConfig()
	cfg, err := load(customPath, "pong.yaml", defaultPongYAML, def)
	if err != nil {
		return def, err
	}
	cfg = cfg.withDefaults(def)
	if err := cfg.Validate(); err != nil {
		return def, err
	}
	return cfg, nil
}

// load resolves a config file. An explicit path must exist and parse; files
// found on the search path are skipped when unreadable or malformed.
func load[T any](customPath, filename string, embedded []byte, fallback T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, fallback)
		if err != nil {
			return fallback, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(filename) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, fallback); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(embedded, fallback)
	if err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML strictly so misspelled keys are reported. The document
// is decoded over base, so keys it leaves out keep their base values.
func decode[T any](data []byte, base T) (T, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}
