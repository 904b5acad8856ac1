// Package history persists a record of completed downloads so repeated runs
// against the same modlist can skip files that are already on disk.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/nexusdl/internal/migrations"
)

// ErrNotFound indicates the requested record doesn't exist.
var ErrNotFound = errors.New("not found")

// Record is one completed download.
type Record struct {
	ID           int64
	Domain       string
	ModID        int
	FileID       int
	FileName     string
	SizeBytes    int64
	DownloadedAt time.Time
}

// Store persists download records.
type Store struct {
	db *sql.DB
}

// NewStore wraps an already-open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the history database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(migrations.HistorySQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a completed download. Re-downloading the same file updates the
// existing record rather than creating a duplicate.
func (s *Store) Add(r *Record) error {
	now := time.Now()
	// RETURNING yields the row id on both paths; LastInsertId is stale
	// when the upsert takes the UPDATE branch.
	err := s.db.QueryRow(`
		INSERT INTO downloads (domain, mod_id, file_id, file_name, size_bytes, downloaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (domain, mod_id, file_id) DO UPDATE SET
			file_name = excluded.file_name,
			size_bytes = excluded.size_bytes,
			downloaded_at = excluded.downloaded_at
		RETURNING id`,
		r.Domain, r.ModID, r.FileID, r.FileName, r.SizeBytes, now,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("insert download record: %w", err)
	}
	r.DownloadedAt = now
	return nil
}

// Get retrieves the record for a (domain, modID, fileID) triple.
// Returns ErrNotFound if there is none.
func (s *Store) Get(domain string, modID, fileID int) (*Record, error) {
	r := &Record{}
	err := s.db.QueryRow(`
		SELECT id, domain, mod_id, file_id, file_name, size_bytes, downloaded_at
		FROM downloads WHERE domain = ? AND mod_id = ? AND file_id = ?`,
		domain, modID, fileID,
	).Scan(&r.ID, &r.Domain, &r.ModID, &r.FileID, &r.FileName, &r.SizeBytes, &r.DownloadedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get record %s/%d/%d: %w", domain, modID, fileID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s/%d/%d: %w", domain, modID, fileID, err)
	}
	return r, nil
}

// Has reports whether a completed download is recorded for the triple.
func (s *Store) Has(domain string, modID, fileID int) (bool, error) {
	_, err := s.Get(domain, modID, fileID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all records, most recent first.
func (s *Store) List() ([]*Record, error) {
	rows, err := s.db.Query(`
		SELECT id, domain, mod_id, file_id, file_name, size_bytes, downloaded_at
		FROM downloads ORDER BY downloaded_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Record
	for rows.Next() {
		r := &Record{}
		if err := rows.Scan(&r.ID, &r.Domain, &r.ModID, &r.FileID, &r.FileName, &r.SizeBytes, &r.DownloadedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return results, nil
}
