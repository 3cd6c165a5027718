package analytics

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding raw page visits.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the visits database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL allows the ingestion path to write while stats queries read, and
	// the busy timeout makes writers wait instead of failing with
	// SQLITE_BUSY when inserts collide.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS page_visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    page_path TEXT NOT NULL DEFAULT '/',
    user_agent TEXT NOT NULL DEFAULT '',
    referrer TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_page_visits_created_at ON page_visits(created_at);
CREATE INDEX IF NOT EXISTS idx_page_visits_session_id ON page_visits(session_id);
`)
	return err
}

// InsertVisit appends one visit. CreatedAt is assigned here, at write time,
// and is the sole ordering and windowing key; rows are never updated or
// deleted afterwards.
func (s *Store) InsertVisit(e *VisitEvent) error {
	if e.PagePath == "" {
		e.PagePath = "/"
	}
	e.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO page_visits (session_id, page_path, user_agent, referrer, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, e.PagePath, e.UserAgent, e.Referrer, e.CreatedAt,
	)
	if err != nil {
		return err
	}
	e.ID, _ = res.LastInsertId()
	return nil
}

// VisitsSince returns all visits with created_at >= since, newest first, as a
// single range fetch so each stats query observes one consistent snapshot.
// Only the columns the aggregator consumes are selected.
func (s *Store) VisitsSince(since time.Time) ([]VisitEvent, error) {
	rows, err := s.db.Query(
		`SELECT session_id, created_at FROM page_visits WHERE created_at >= ? ORDER BY created_at DESC`,
		since.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []VisitEvent
	for rows.Next() {
		var e VisitEvent
		if err := rows.Scan(&e.SessionID, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// CountVisits returns the total number of stored visits.
func (s *Store) CountVisits() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM page_visits`).Scan(&n)
	return n, err
}
