// Package storage keeps the scores of the current session in memory.
// Nothing is written to disk; the table lives as long as the process.
package storage

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// DefaultLimit is the number of entries TopScores returns for limit <= 0.
const DefaultLimit = 10

// ErrInvalidScore is returned for scores that cannot be recorded.
var ErrInvalidScore = errors.New("storage: invalid score")

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats holds aggregated statistics for one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Store is a session score table safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	scores map[string][]ScoreEntry
	now    func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		scores: make(map[string][]ScoreEntry),
		now:    time.Now,
	}
}

// SaveScore records a finished game and returns its entry ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	if gameID == "" {
		return 0, fmt.Errorf("%w: empty game id", ErrInvalidScore)
	}
	if score < 0 {
		return 0, fmt.Errorf("%w: %s score %d is negative", ErrInvalidScore, gameID, score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.scores[gameID] = append(s.scores[gameID], ScoreEntry{
		ID:        s.nextID,
		GameID:    gameID,
		Score:     score,
		CreatedAt: s.now(),
	})
	return s.nextID, nil
}

// TopScores returns the best scores for a game, highest first. Equal scores
// keep the order they were recorded in.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.RLock()
	entries := slices.Clone(s.scores[gameID])
	s.mu.RUnlock()

	slices.SortStableFunc(entries, func(a, b ScoreEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// HighScore returns the best score for a game, or 0 if it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := 0
	for _, e := range s.scores[gameID] {
		best = max(best, e.Score)
	}
	return best, nil
}

// Stats returns aggregated statistics for a game.
func (s *Store) Stats(gameID string) GameStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := GameStats{GameID: gameID}
	for _, e := range s.scores[gameID] {
		stats.GamesCount++
		stats.HighScore = max(stats.HighScore, e.Score)
		stats.TotalScore += int64(e.Score)
		if e.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = e.CreatedAt
		}
	}
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	return stats
}

// ClearScores removes all scores for a game.
func (s *Store) ClearScores(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scores, gameID)
}
