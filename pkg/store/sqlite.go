package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arshith183/snake-io-game/pkg/game"
	_ "modernc.org/sqlite"
)

// SQLite keeps the high score and finished sessions in a SQLite database
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the schema
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The game loop and the session recorder write from different goroutines
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS game_sessions (
			id TEXT PRIMARY KEY,
			start_ms INTEGER,
			end_ms INTEGER,
			score INTEGER,
			length INTEGER,
			cause TEXT
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// LoadHighScore returns 0 when no score was saved yet
func (s *SQLite) LoadHighScore() (int, error) {
	var score int
	err := s.db.QueryRow(`SELECT score FROM high_scores WHERE id = 1`).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return score, nil
}

func (s *SQLite) SaveHighScore(score int) error {
	_, err := s.db.Exec(`
		INSERT INTO high_scores (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		score)
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

func (s *SQLite) SaveSession(sum game.SessionSummary) error {
	_, err := s.db.Exec(
		`INSERT INTO game_sessions (id, start_ms, end_ms, score, length, cause) VALUES (?, ?, ?, ?, ?, ?)`,
		sum.ID, sum.StartedAt.UnixMilli(), sum.EndedAt.UnixMilli(), sum.Score, sum.Length, sum.Cause)
	if err != nil {
		return fmt.Errorf("save session %s: %w", sum.ID, err)
	}
	return nil
}

// RecentSessions returns up to limit sessions, newest first
func (s *SQLite) RecentSessions(limit int) ([]game.SessionSummary, error) {
	rows, err := s.db.Query(
		`SELECT id, start_ms, end_ms, score, length, cause FROM game_sessions ORDER BY end_ms DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]game.SessionSummary, 0)
	for rows.Next() {
		var (
			sum            game.SessionSummary
			startMS, endMS int64
		)
		if err := rows.Scan(&sum.ID, &startMS, &endMS, &sum.Score, &sum.Length, &sum.Cause); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sum.StartedAt = time.UnixMilli(startMS)
		sum.EndedAt = time.UnixMilli(endMS)
		sessions = append(sessions, sum)
	}
	return sessions, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
