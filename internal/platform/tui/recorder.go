package tui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/monster-arena/internal/highscore"
	"github.com/vovakirdan/monster-arena/internal/storage"
)

// ScoreRecorder writes finished runs to the flat highscore file and the
// SQLite history. It is shared by every session of a process.
type ScoreRecorder struct {
	mu            sync.Mutex
	highscorePath string
	store         *storage.Store // Optional
}

// NewScoreRecorder creates a recorder. store may be nil.
func NewScoreRecorder(highscorePath string, store *storage.Store) *ScoreRecorder {
	if highscorePath == "" {
		highscorePath = highscore.DefaultFile
	}
	return &ScoreRecorder{highscorePath: highscorePath, store: store}
}

// Record stores one finished run. It returns the rank reached in the
// top-five table, or 0 if the score did not make it.
// The file is re-read on every call so concurrent sessions see each other.
func (r *ScoreRecorder) Record(mode, player string, score int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error

	rank := 0
	table, err := highscore.Load(r.highscorePath)
	if err != nil {
		errs = append(errs, err)
	} else if rank = table.Record(player, score); rank > 0 {
		if err := table.Save(); err != nil {
			errs = append(errs, err)
			rank = 0
		}
	}

	if r.store != nil {
		if _, err := r.store.SaveScore(mode, highscore.SanitizeName(player), score); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return rank, fmt.Errorf("record score: %w", errors.Join(errs...))
	}
	return rank, nil
}

// Highscores returns the current top-five table.
func (r *ScoreRecorder) Highscores() ([]highscore.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := highscore.Load(r.highscorePath)
	if err != nil {
		return nil, err
	}
	return table.Entries(), nil
}

// History returns the best runs of a mode from the SQLite history.
// Without a database it returns nothing.
func (r *ScoreRecorder) History(mode string, limit int) ([]storage.ScoreEntry, error) {
	if r.store == nil {
		return nil, nil
	}
	return r.store.TopScores(mode, limit)
}

// HasHistory reports whether a run database is attached.
func (r *ScoreRecorder) HasHistory() bool {
	return r.store != nil
}
