package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/pkg/filesystem"
	"github.com/doeshing/ha-assist/internal/ports"
)

// SQLiteStore persists successful queries in a SQLite database.
// A store whose database could not be opened keeps a nil handle and behaves as
// an empty, write-ignoring history.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// DefaultPath returns the database location for cfg, or "" when no cache
// directory can be determined.
func DefaultPath(cfg domain.Config) string {
	if cfg.HistoryPath != "" {
		return filesystem.ExpandPath(cfg.HistoryPath)
	}
	dir, ok := filesystem.CacheDir()
	if !ok {
		return ""
	}
	return filepath.Join(dir, domain.HistoryFileName)
}

// NewSQLiteStore opens (or creates) the database at path. Failures are logged
// once and yield a degraded store instead of an error.
func NewSQLiteStore(path string, log ports.Logger) *SQLiteStore {
	store := &SQLiteStore{path: path}
	if path == "" {
		log.Warn("history disabled: unable to determine cache directory", nil)
		return store
	}
	db, err := open(path)
	if err != nil {
		log.Error("history disabled: failed to open database", err, map[string]interface{}{"path": path})
		return store
	}
	store.db = db
	return store
}

func open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// One connection: the engine never issues concurrent store operations.
	db.SetMaxOpenConns(1)
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL CHECK (query <> '')
	);`)
	return err
}

// Available reports whether the store has a working database.
func (s *SQLiteStore) Available() bool {
	return s.db != nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Record appends one row for query.
func (s *SQLiteStore) Record(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return domain.ErrEmptyQuery
	}
	if s.db == nil {
		return domain.ErrStoreUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, `INSERT INTO history (query) VALUES (?)`, query); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// Ranked returns every distinct query with its row count, most frequent first.
// Rows with equal counts come back in whatever order SQLite groups them.
func (s *SQLiteStore) Ranked(ctx context.Context) ([]domain.RankedQuery, error) {
	if s.db == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT COUNT(query) AS frequency, query FROM history GROUP BY query ORDER BY frequency DESC`)
	if err != nil {
		return nil, fmt.Errorf("query ranked history: %w", err)
	}
	defer rows.Close()
	var ranked []domain.RankedQuery
	for rows.Next() {
		var rq domain.RankedQuery
		if err := rows.Scan(&rq.Frequency, &rq.Query); err != nil {
			return nil, fmt.Errorf("scan ranked history: %w", err)
		}
		ranked = append(ranked, rq)
	}
	return ranked, rows.Err()
}

// Entries returns the most recent rows first (limit <= 0 means all).
func (s *SQLiteStore) Entries(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	builder := strings.Builder{}
	builder.WriteString("SELECT id, query FROM history ORDER BY id DESC")
	var args []interface{}
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, builder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()
	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Query); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the total number of rows.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, domain.ErrStoreUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if s.db == nil {
		return domain.ErrStoreUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM history")
	return err
}

// ExportJSON writes the history table to a jsonl file, oldest first.
func (s *SQLiteStore) ExportJSON(ctx context.Context, dest string) error {
	entries, err := s.Entries(ctx, 0)
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for i := len(entries) - 1; i >= 0; i-- {
		b, err := json.Marshal(entries[i])
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.HistoryAdmin = (*SQLiteStore)(nil)
