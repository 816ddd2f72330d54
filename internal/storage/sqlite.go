// Package storage keeps a ledger of finished rounds for the current
// session. The database lives in memory and disappears with the process;
// nothing is written to disk.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records rounds played in one session.
type Ledger struct {
	db *sql.DB
}

// Round is one finished Ready→Playing→GameOver cycle.
type Round struct {
	ID       int64
	Score    int
	Duration time.Duration
	EndedAt  time.Time
}

// Stats summarizes the session.
type Stats struct {
	Rounds   int
	Best     int
	AvgScore float64
	PlayTime time.Duration
}

// OpenSession creates an empty in-memory ledger.
func OpenSession() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every pooled connection would get its own :memory: database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}

	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database; the ledger's contents are lost.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordRound stores a finished round and returns its ID.
func (l *Ledger) RecordRound(score int, d time.Duration) (int64, error) {
	if score < 0 {
		return 0, fmt.Errorf("storage: negative score %d", score)
	}

	result, err := l.db.Exec(
		"INSERT INTO rounds (score, duration_ms) VALUES (?, ?)",
		score, d.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Best returns the highest score of the session, or 0 before any round.
func (l *Ledger) Best() (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Rounds returns the most recent rounds, newest first.
func (l *Ledger) Rounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, score, duration_ms, ended_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var durationMs int64
		var endedAt any
		if err := rows.Scan(&r.ID, &r.Score, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.EndedAt = parseTime(endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Stats aggregates every round of the session.
func (l *Ledger) Stats() (Stats, error) {
	var st Stats
	var playMs int64
	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(duration_ms), 0)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.Best, &st.AvgScore, &playMs)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.PlayTime = time.Duration(playMs) * time.Millisecond
	return st, nil
}

// parseTime handles both time.Time and string, depending on how the
// driver decodes DATETIME columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
