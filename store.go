package flashdeck

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database and provides operations for flashcards.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
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
	// WAL for concurrent read/write access, busy timeout so writers wait
	// instead of returning SQLITE_BUSY immediately.
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
CREATE TABLE IF NOT EXISTS flashcards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    phrase TEXT NOT NULL,
    category TEXT NOT NULL,
    definition TEXT NOT NULL,
    youtube_link TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_flashcards_category ON flashcards(category);
`)
	return err
}

// ListCards returns all cards ordered by id. If category is non-empty,
// results are filtered to that category.
func (s *Store) ListCards(category string) ([]FlashCard, error) {
	var rows *sql.Rows
	var err error
	if category == "" {
		rows, err = s.db.Query(`SELECT id, phrase, category, definition, youtube_link FROM flashcards ORDER BY id`)
	} else {
		rows, err = s.db.Query(`SELECT id, phrase, category, definition, youtube_link FROM flashcards WHERE category = ? ORDER BY id`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []FlashCard
	for rows.Next() {
		var card FlashCard
		if err := rows.Scan(&card.ID, &card.Phrase, &card.Category, &card.Definition, &card.YoutubeLink); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// ListCategories returns the distinct card categories in alphabetical order.
func (s *Store) ListCategories() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT category FROM flashcards ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// SaveCard inserts a new card and sets its ID.
func (s *Store) SaveCard(card *FlashCard) error {
	res, err := s.db.Exec(
		`INSERT INTO flashcards (phrase, category, definition, youtube_link) VALUES (?, ?, ?, ?)`,
		card.Phrase, card.Category, card.Definition, card.YoutubeLink,
	)
	if err != nil {
		return err
	}
	card.ID, _ = res.LastInsertId()
	return nil
}

// CountCards returns the number of stored cards.
func (s *Store) CountCards() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM flashcards`).Scan(&n)
	return n, err
}

// SeedIfEmpty populates the store with the given cards when it holds none.
func (s *Store) SeedIfEmpty(cards []FlashCard) error {
	n, err := s.CountCards()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range cards {
		if err := s.SaveCard(&cards[i]); err != nil {
			return err
		}
	}
	return nil
}
