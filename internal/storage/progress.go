package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// SaveData is the per-mode progression kept between sessions.
type SaveData struct {
	HighScore   int
	GamesPlayed int
	BestHeight  int
}

// LoadSave returns the progression for mode, or nil if the mode was never played.
func (s *Store) LoadSave(mode string) (*SaveData, error) {
	var d SaveData
	err := s.db.QueryRow(
		"SELECT high_score, games_played, best_height FROM progress WHERE mode = ?",
		mode,
	).Scan(&d.HighScore, &d.GamesPlayed, &d.BestHeight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load progress: %w", err)
	}
	return &d, nil
}

// Save replaces the progression for mode.
func (s *Store) Save(mode string, d SaveData) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (mode, high_score, games_played, best_height, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(mode) DO UPDATE SET
		   high_score = excluded.high_score,
		   games_played = excluded.games_played,
		   best_height = excluded.best_height,
		   updated_at = excluded.updated_at`,
		mode, d.HighScore, d.GamesPlayed, d.BestHeight,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// RecordRun stores a finished run and folds it into the mode's progression.
// It returns the updated progression.
func (s *Store) RecordRun(mode string, score, height int) (SaveData, error) {
	if _, err := s.SaveScore(mode, score, height); err != nil {
		return SaveData{}, err
	}

	prev, err := s.LoadSave(mode)
	if err != nil {
		return SaveData{}, err
	}
	var d SaveData
	if prev != nil {
		d = *prev
	}
	d.GamesPlayed++
	d.HighScore = max(d.HighScore, score)
	d.BestHeight = max(d.BestHeight, height)

	if err := s.Save(mode, d); err != nil {
		return SaveData{}, err
	}
	return d, nil
}
