package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/ports"
)

// FileStore appends accepted suggestions to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a usage store backed by the jsonl file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements ports.UsageRepository.
func (f *FileStore) Save(record domain.UsageRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create usage directory: %w", err)
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.SecureFilePermissions)
	if err != nil {
		return fmt.Errorf("open usage file: %w", err)
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Clear removes the usage file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Records returns accepted suggestions, newest first. A limit of zero
// returns everything; an empty language matches all languages.
func (f *FileStore) Records(limit int, language string) ([]domain.UsageRecord, error) {
	records, err := f.readAll()
	if err != nil {
		return nil, err
	}
	var out []domain.UsageRecord
	for i := len(records) - 1; i >= 0; i-- {
		if language != "" && records[i].Language != language {
			continue
		}
		out = append(out, records[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Summary aggregates acceptances per suggestion id.
func (f *FileStore) Summary() (map[string]domain.UsageSummary, error) {
	records, err := f.readAll()
	if err != nil {
		return nil, err
	}
	return summarize(records), nil
}

func (f *FileStore) readAll() ([]domain.UsageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read usage file: %w", err)
	}
	var records []domain.UsageRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec domain.UsageRecord
		// best-effort: skip lines written by a crashed process
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AcceptedAt.Before(records[j].AcceptedAt)
	})
	return records, scanner.Err()
}

func summarize(records []domain.UsageRecord) map[string]domain.UsageSummary {
	out := make(map[string]domain.UsageSummary)
	for _, rec := range records {
		sum := out[rec.SuggestionID]
		sum.Count++
		if rec.AcceptedAt.After(sum.LastAccepted) {
			sum.LastAccepted = rec.AcceptedAt
		}
		out[rec.SuggestionID] = sum
	}
	return out
}

var _ ports.UsageRepository = (*FileStore)(nil)
