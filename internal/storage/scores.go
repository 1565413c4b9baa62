package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreEntry is one finished run: the lane the player reached.
type ScoreEntry struct {
	ID        int64
	Mode      string // difficulty preset the run was played on
	Lane      int
	Skin      string
	CreatedAt time.Time
}

// SaveScore records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveScore(mode string, lane int, skin string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (mode, lane, skin) VALUES (?, ?, ?)",
		mode, lane, skin,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the best runs for a mode, highest lane first.
// A limit of zero or less means 10.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, lane, skin, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY lane DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Lane, &e.Skin, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best lane reached in a mode, or 0.
func (s *Store) HighScore(mode string) (int, error) {
	var lane sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(lane) FROM scores WHERE mode = ?",
		mode,
	).Scan(&lane)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !lane.Valid {
		return 0, nil
	}
	return int(lane.Int64), nil
}

// ClearScores deletes all runs of a mode.
func (s *Store) ClearScores(mode string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a mode.
type GameStats struct {
	Mode       string
	Runs       int
	BestLane   int
	AvgLane    float64
	TotalLanes int64
	LastPlayed time.Time
}

// GetGameStats aggregates every run of a mode.
func (s *Store) GetGameStats(mode string) (*GameStats, error) {
	stats := &GameStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(lane), 0), COALESCE(AVG(lane), 0), COALESCE(SUM(lane), 0)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &stats.BestLane, &stats.AvgLane, &stats.TotalLanes)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE mode = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Modes lists every mode with at least one recorded run.
func (s *Store) Modes() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT mode FROM scores ORDER BY mode")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list modes: %w", err)
	}
	defer rows.Close()

	var modes []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("storage: cannot scan mode: %w", err)
		}
		modes = append(modes, m)
	}
	return modes, rows.Err()
}
