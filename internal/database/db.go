// Package database persists completed-interval history to sqlite. Only
// finished intervals are written; in-flight timer state never touches disk.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"pomo/internal/models"
)

// Store wraps the sqlite history database.
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	const schema = `CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		mode TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		completed_at DATETIME NOT NULL,
		duration_seconds INTEGER NOT NULL,
		session_number INTEGER DEFAULT 0
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordSession inserts a completed interval and returns its row ID.
func (s *Store) RecordSession(sess models.Session) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (mode, started_at, completed_at, duration_seconds, session_number)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.Mode, sess.StartedAt, sess.CompletedAt, sess.DurationSeconds, sess.SessionNumber,
	)
	if err != nil {
		return 0, fmt.Errorf("record session: %w", err)
	}
	return res.LastInsertId()
}

// SessionsForDay returns the intervals completed on date (YYYY-MM-DD),
// oldest first.
func (s *Store) SessionsForDay(date string) ([]models.Session, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, started_at, completed_at, duration_seconds, session_number
		 FROM sessions
		 WHERE date(completed_at) = ?
		 ORDER BY completed_at`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions for %s: %w", date, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var sess models.Session
		if err := rows.Scan(&sess.ID, &sess.Mode, &sess.StartedAt, &sess.CompletedAt, &sess.DurationSeconds, &sess.SessionNumber); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// DaySummary totals the completed work sessions and focus/break time for
// date (YYYY-MM-DD).
func (s *Store) DaySummary(date string) (models.DaySummary, error) {
	summary := models.DaySummary{Date: date}
	err := s.db.QueryRow(
		`SELECT
			COUNT(CASE WHEN mode = ? THEN 1 END),
			COALESCE(SUM(CASE WHEN mode = ? THEN duration_seconds ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN mode != ? THEN duration_seconds ELSE 0 END), 0)
		 FROM sessions WHERE date(completed_at) = ?`,
		models.ModeWork, models.ModeWork, models.ModeWork, date,
	).Scan(&summary.WorkSessions, &summary.FocusSeconds, &summary.BreakSeconds)
	if err != nil {
		return summary, fmt.Errorf("summarize %s: %w", date, err)
	}
	return summary, nil
}
