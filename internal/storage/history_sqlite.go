package storage

import (
	"database/sql"
	"fmt"
	"time"

	"gomodoro/internal/core/pomodoro"
	"gomodoro/internal/session"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// HistoryStore persists finished sessions in a local SQLite database.
type HistoryStore struct {
	db *sql.DB
}

// DayStats aggregates one day of recorded sessions.
type DayStats struct {
	CompletedWork   int
	CompletedBreaks int
	FocusTime       time.Duration
}

// OpenHistory opens (or creates) the history database at path.
func OpenHistory(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	store := &HistoryStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database handle.
func (store *HistoryStore) Close() error {
	return store.db.Close()
}

// Save inserts one session record.
func (store *HistoryStore) Save(record session.Session) error {
	_, err := store.db.Exec(`
        INSERT INTO sessions (id, phase, started_at, ended_at, duration_seconds, completed)
        VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID.String(),
		string(record.Phase),
		record.StartedAt.UTC(),
		record.EndedAt.UTC(),
		int64(record.Duration/time.Second),
		record.Completed,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// ListBetween returns sessions that started within [from, to),
// oldest first.
func (store *HistoryStore) ListBetween(from, to time.Time) ([]session.Session, error) {
	rows, err := store.db.Query(`
        SELECT id, phase, started_at, ended_at, duration_seconds, completed
        FROM sessions
        WHERE started_at >= ? AND started_at < ?
        ORDER BY started_at`,
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var record session.Session
		var id, phase string
		var durationSeconds int64
		if err := rows.Scan(&id, &phase, &record.StartedAt, &record.EndedAt, &durationSeconds, &record.Completed); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse session id: %w", err)
		}
		record.ID = parsed
		record.Phase = pomodoro.Phase(phase)
		record.Duration = time.Duration(durationSeconds) * time.Second
		sessions = append(sessions, record)
	}
	return sessions, rows.Err()
}

// DayStats aggregates completed sessions for the day containing at.
func (store *HistoryStore) DayStats(at time.Time) (DayStats, error) {
	dayStart := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	sessions, err := store.ListBetween(dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return DayStats{}, err
	}

	var stats DayStats
	for _, record := range sessions {
		if !record.Completed {
			continue
		}
		if record.Phase == pomodoro.PhaseWork {
			stats.CompletedWork++
			stats.FocusTime += record.Duration
		} else {
			stats.CompletedBreaks++
		}
	}
	return stats, nil
}

func (store *HistoryStore) initTables() error {
	_, err := store.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            phase TEXT NOT NULL,
            started_at DATETIME NOT NULL,
            ended_at DATETIME NOT NULL,
            duration_seconds INTEGER NOT NULL,
            completed INTEGER NOT NULL
        )`)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}
