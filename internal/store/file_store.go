package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"calc/internal/domain"
)

const historyFile = "history.json"

// DefaultHistoryLimit caps stored entries when no limit is configured.
const DefaultHistoryLimit = 100

// FileStore keeps calculation history on disk, oldest entries first.
type FileStore struct {
	dir string
	max int
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir keeping at most max entries.
// A max of zero or less falls back to DefaultHistoryLimit.
func NewFileStore(dir string, max int) *FileStore {
	if max <= 0 {
		max = DefaultHistoryLimit
	}
	return &FileStore{dir: dir, max: max}
}

// AppendHistory records e, dropping the oldest entries past the cap.
func (s *FileStore) AppendHistory(e domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.HistoryEntry
	path := filepath.Join(s.dir, historyFile)
	if err := readJSON(path, &entries); err != nil {
		return err
	}
	entries = append(entries, e)
	if len(entries) > s.max {
		entries = entries[len(entries)-s.max:]
	}
	return writeJSON(path, entries, 0o600)
}

// ListHistory returns up to limit of the most recent entries, newest last.
// A limit of zero or less returns everything.
func (s *FileStore) ListHistory(limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.HistoryEntry
	if err := readJSON(filepath.Join(s.dir, historyFile), &entries); err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// ClearHistory wipes all recorded entries.
func (s *FileStore) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, historyFile), []domain.HistoryEntry{}, 0o600)
}

// ---------- helpers ----------

// readJSON loads path into out; a file that does not exist yet is simply an
// empty history.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON marshals v indented and swaps it into place with a temp file
// and rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
