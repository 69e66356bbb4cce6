// Package favorites keeps the saved results and mirrors them to a JSON file.
package favorites

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/prenoms/internal/logging"
	"github.com/f3rmion/prenoms/internal/prenoms"
)

// DisplayLimit is how many favorites a list view shows by default.
const DisplayLimit = 20

var (
	// ErrAlreadyExists is returned by Add when the name is already saved.
	ErrAlreadyExists = errors.New("favorite already exists")

	// ErrEmptyName is returned by Add for a blank name.
	ErrEmptyName = errors.New("favorite name is empty")
)

// Store is the ordered list of favorites, oldest first. Every mutation
// rewrites the whole file. A failed write is logged and the in-memory list
// keeps the change.
type Store struct {
	path   string
	items  []prenoms.FavoriteItem
	logger *log.Logger
}

// New creates an empty store backed by path. Call Load to read the file.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{path: path, logger: logger}
}

// Open creates a store backed by path and loads it.
func Open(path string, logger *log.Logger) *Store {
	s := New(path, logger)
	s.Load()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Add appends item unless a favorite with the same canonical name exists.
func (s *Store) Add(item prenoms.FavoriteItem) error {
	key := prenoms.Canonical(item.Name)
	if key == "" {
		return ErrEmptyName
	}
	if s.Contains(key) {
		return ErrAlreadyExists
	}

	s.items = append(s.items, item)
	s.Persist()
	return nil
}

// Contains reports whether a favorite named name exists.
func (s *Store) Contains(name string) bool {
	key := prenoms.Canonical(name)
	for _, it := range s.items {
		if prenoms.Canonical(it.Name) == key {
			return true
		}
	}
	return false
}

// List returns a copy of the favorites, oldest first.
func (s *Store) List() []prenoms.FavoriteItem {
	return append([]prenoms.FavoriteItem(nil), s.items...)
}

// Latest returns at most n favorites, newest first. n <= 0 means all.
func (s *Store) Latest(n int) []prenoms.FavoriteItem {
	count := len(s.items)
	if n > 0 && n < count {
		count = n
	}
	out := make([]prenoms.FavoriteItem, 0, count)
	for i := len(s.items) - 1; i >= 0 && len(out) < count; i-- {
		out = append(out, s.items[i])
	}
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	return len(s.items)
}

// Clear removes every favorite and persists the empty list.
func (s *Store) Clear() {
	s.items = nil
	s.Persist()
}

// Load replaces the in-memory list with the file contents. A missing file
// gives an empty list; an unreadable or corrupt one is logged and also gives
// an empty list.
func (s *Store) Load() []prenoms.FavoriteItem {
	items, err := readFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug("no favorites file yet", "path", s.path)
		items = nil
	case err != nil:
		s.logger.Error("loading favorites", "path", s.path, "err", err)
		items = nil
	}

	s.items = s.dedupe(items)
	return s.List()
}

// dedupe drops later entries whose canonical name was already seen.
func (s *Store) dedupe(items []prenoms.FavoriteItem) []prenoms.FavoriteItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		key := prenoms.Canonical(it.Name)
		if key == "" || seen[key] {
			s.logger.Warn("skipping favorite", "name", it.Name, "path", s.path)
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Persist writes the full list to disk, replacing the previous file. Errors
// are logged and returned; the in-memory list is left as is.
func (s *Store) Persist() error {
	if err := writeFile(s.path, s.items); err != nil {
		s.logger.Error("saving favorites", "path", s.path, "err", err)
		return err
	}
	return nil
}

func readFile(path string) ([]prenoms.FavoriteItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading favorites file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var items []prenoms.FavoriteItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing favorites file: %w", err)
	}
	return items, nil
}

// encode renders items as indented JSON with non-ASCII and HTML characters
// written literally.
func encode(items []prenoms.FavoriteItem) ([]byte, error) {
	if items == nil {
		items = []prenoms.FavoriteItem{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return nil, fmt.Errorf("marshaling favorites: %w", err)
	}
	return buf.Bytes(), nil
}

// writeFile replaces path through a temporary file in the same directory so
// readers never see a half-written list.
func writeFile(path string, items []prenoms.FavoriteItem) error {
	data, err := encode(items)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating favorites directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".favorites-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing favorites file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing favorites file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing favorites file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing favorites file: %w", err)
	}
	return nil
}
