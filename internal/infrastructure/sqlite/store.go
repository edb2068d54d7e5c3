// Package sqlite persists saved searches. A saved search is a snapshot of
// an already-normalized product list — raw backend payloads are never
// written to disk.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arbitragevault/backend/internal/domain"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS saved_searches (
	id         TEXT PRIMARY KEY,
	owner_uid  TEXT NOT NULL,
	name       TEXT NOT NULL,
	source     TEXT NOT NULL,
	products   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_saved_searches_owner ON saved_searches(owner_uid, created_at DESC);
`

// Open opens (and migrates) the sqlite database at the given path,
// creating parent directories as needed.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma journal_mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// Store implements domain.SavedSearchRepository over sqlite.
type Store struct {
	DB *sql.DB
}

// NewStore creates a saved-search store.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Create inserts a new saved search. A missing ID is filled with a fresh
// UUID; CreatedAt/UpdatedAt are stamped here.
func (s *Store) Create(ctx context.Context, search *domain.SavedSearch) error {
	if search.OwnerUID == "" || search.Name == "" {
		return domain.ErrInvalidRequest
	}
	if search.ID == "" {
		search.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	search.CreatedAt = now
	search.UpdatedAt = now

	products, err := json.Marshal(search.Products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO saved_searches (id, owner_uid, name, source, products, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, search.ID, search.OwnerUID, search.Name, string(search.Source), string(products), search.CreatedAt, search.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert saved search: %w", err)
	}
	return nil
}

// GetByID fetches one saved search.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.SavedSearch, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, owner_uid, name, source, products, created_at, updated_at
		FROM saved_searches
		WHERE id = ?
	`, id)

	search, err := scanSearch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get saved search: %w", err)
	}
	return search, nil
}

// ListByOwner returns an owner's saved searches, newest first, plus the
// total count for pagination.
func (s *Store) ListByOwner(ctx context.Context, ownerUID string, limit, offset int) ([]domain.SavedSearch, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM saved_searches WHERE owner_uid = ?
	`, ownerUID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count saved searches: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, owner_uid, name, source, products, created_at, updated_at
		FROM saved_searches
		WHERE owner_uid = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, ownerUID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list saved searches: %w", err)
	}
	defer rows.Close()

	searches := make([]domain.SavedSearch, 0, limit)
	for rows.Next() {
		search, err := scanSearch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan saved search: %w", err)
		}
		searches = append(searches, *search)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate saved searches: %w", err)
	}

	return searches, total, nil
}

// Delete removes a saved search owned by ownerUID. Returns false when no
// matching row existed.
func (s *Store) Delete(ctx context.Context, id, ownerUID string) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM saved_searches
		WHERE id = ? AND owner_uid = ?
	`, id, ownerUID)
	if err != nil {
		return false, fmt.Errorf("delete saved search: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSearch(row scanner) (*domain.SavedSearch, error) {
	var (
		search   domain.SavedSearch
		source   string
		products string
	)
	if err := row.Scan(&search.ID, &search.OwnerUID, &search.Name, &source, &products, &search.CreatedAt, &search.UpdatedAt); err != nil {
		return nil, err
	}
	search.Source = domain.Source(source)

	if err := json.Unmarshal([]byte(products), &search.Products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return &search, nil
}
