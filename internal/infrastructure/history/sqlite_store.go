package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/ports"
)

// acceptedAtLayout is fixed width so accepted_at sorts lexicographically.
const acceptedAtLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore persists accepted suggestions in a SQLite database.
// When the database cannot be opened it falls back to a jsonl file next to it.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore creates (or opens) the usage database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	fallback := NewFileStore(strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl")
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	store := &SQLiteStore{db: db, path: path, fallback: fallback}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path, fallback: fallback}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS accepted_suggestions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		suggestion_id TEXT NOT NULL,
		language TEXT,
		code TEXT,
		accepted_at TEXT
	);`)
	return err
}

// Degraded reports whether the store is writing to the jsonl fallback.
func (s *SQLiteStore) Degraded() bool {
	return s.db == nil
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.UsageRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO accepted_suggestions
		(suggestion_id, language, code, accepted_at)
		VALUES (?, ?, ?, ?)`,
		record.SuggestionID,
		record.Language,
		record.Code,
		record.AcceptedAt.UTC().Format(acceptedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("insert usage record: %w", err)
	}
	return nil
}

// Records returns accepted suggestions, newest first (limit/language optional).
func (s *SQLiteStore) Records(limit int, language string) ([]domain.UsageRecord, error) {
	if s.db == nil {
		return s.fallback.Records(limit, language)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT suggestion_id, language, code, accepted_at FROM accepted_suggestions")
	var args []interface{}
	if language != "" {
		builder.WriteString(" WHERE language = ?")
		args = append(args, language)
	}
	builder.WriteString(" ORDER BY accepted_at DESC, id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query usage records: %w", err)
	}
	defer rows.Close()
	var records []domain.UsageRecord
	for rows.Next() {
		var rec domain.UsageRecord
		var ts string
		if err := rows.Scan(&rec.SuggestionID, &rec.Language, &rec.Code, &ts); err != nil {
			return nil, err
		}
		if t, err := time.Parse(acceptedAtLayout, ts); err == nil {
			rec.AcceptedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Summary aggregates acceptances per suggestion id.
func (s *SQLiteStore) Summary() (map[string]domain.UsageSummary, error) {
	if s.db == nil {
		return s.fallback.Summary()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT suggestion_id, COUNT(*), MAX(accepted_at)
		FROM accepted_suggestions GROUP BY suggestion_id`)
	if err != nil {
		return nil, fmt.Errorf("summarize usage: %w", err)
	}
	defer rows.Close()
	out := make(map[string]domain.UsageSummary)
	for rows.Next() {
		var id, ts string
		var sum domain.UsageSummary
		if err := rows.Scan(&id, &sum.Count, &ts); err != nil {
			return nil, err
		}
		if t, err := time.Parse(acceptedAtLayout, ts); err == nil {
			sum.LastAccepted = t
		}
		out[id] = sum
	}
	return out, rows.Err()
}

// Clear deletes all usage records.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM accepted_suggestions")
	return err
}

// Path returns the database path, or the fallback file when degraded.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fallback.Path()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.UsageRepository = (*SQLiteStore)(nil)
