package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"rapport/internal/domain"
	"rapport/internal/ports"
)

// Store implements ports.ContactRepository on a single JSON file.
// The in-memory collection is the source of truth for the session; every
// mutation rewrites the whole file and write failures are only logged.
type Store struct {
	path string
	log  *zap.Logger

	mu       sync.RWMutex
	contacts []domain.Contact
}

// Ensure Store implements ContactRepository
var _ ports.ContactRepository = (*Store)(nil)

// NewStore creates a store for the given file without loading it
func NewStore(path string, log *zap.Logger) *Store {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		path: path,
		log:  log.With(zap.String("component", "contact_store")),
	}
}

// Open creates a store and loads the stored collection
func Open(path string, log *zap.Logger) (*Store, ports.LoadResult) {
	s := NewStore(path, log)
	return s, s.Load()
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file. A missing or unparsable file yields an empty collection.
func (s *Store) Load() ports.LoadResult {
	contacts, result := s.read()

	s.mu.Lock()
	s.contacts = contacts
	s.mu.Unlock()

	switch result.Outcome {
	case ports.LoadOutcomeCorrupt:
		s.log.Warn("stored contacts unreadable, starting empty", zap.String("path", s.path), zap.Error(result.Err))
	case ports.LoadOutcomeMissing:
		s.log.Debug("no stored contacts", zap.String("path", s.path))
	default:
		s.log.Debug("contacts loaded", zap.String("path", s.path), zap.Int("count", result.Count))
	}
	return result
}

func (s *Store) read() ([]domain.Contact, ports.LoadResult) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Contact{}, ports.LoadResult{Outcome: ports.LoadOutcomeMissing}
	}
	if err != nil {
		return []domain.Contact{}, ports.LoadResult{Outcome: ports.LoadOutcomeCorrupt, Err: err}
	}

	contacts, err := DecodeSnapshot(data)
	if err != nil {
		return []domain.Contact{}, ports.LoadResult{Outcome: ports.LoadOutcomeCorrupt, Err: err}
	}
	return contacts, ports.LoadResult{Outcome: ports.LoadOutcomeLoaded, Count: len(contacts)}
}

// List returns a deep copy of the collection in stored order
func (s *Store) List() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Contact, len(s.contacts))
	for i, c := range s.contacts {
		out[i] = cloneContact(c)
	}
	return out
}

// Find returns the first contact with the given id
func (s *Store) Find(id string) (domain.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return cloneContact(s.contacts[i]), true
	}
	return domain.Contact{}, false
}

// Add appends a contact. The caller is responsible for a fresh id.
func (s *Store) Add(contact domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = append(s.contacts, cloneContact(contact))
	s.persistLocked()
}

// Update replaces the first contact with a matching id, keeping its position.
// Unknown ids are ignored and nothing is written.
func (s *Store) Update(contact domain.Contact) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(contact.ID)
	if i < 0 {
		return false
	}
	s.contacts[i] = cloneContact(contact)
	s.persistLocked()
	return true
}

// Remove deletes every contact with the given id and returns how many were removed.
// Nothing is written when no contact matched.
func (s *Store) Remove(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	removed := len(s.contacts) - len(kept)
	if removed == 0 {
		return 0
	}
	s.contacts = kept
	s.persistLocked()
	return removed
}

// ExportSnapshot serializes the in-memory collection without touching the file
func (s *Store) ExportSnapshot() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := EncodeSnapshot(s.contacts)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}

// ImportSnapshot replaces the whole collection with the parsed snapshot.
// On a parse failure the collection is left untouched.
func (s *Store) ImportSnapshot(data string) error {
	contacts, err := DecodeSnapshot([]byte(data))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = contacts
	s.persistLocked()
	s.log.Info("contacts imported", zap.Int("count", len(contacts)))
	return nil
}

// cloneContact gives the contact its own PhotoPath so callers never share
// memory with the stored collection
func cloneContact(c domain.Contact) domain.Contact {
	if c.PhotoPath != nil {
		p := *c.PhotoPath
		c.PhotoPath = &p
	}
	return c
}

func (s *Store) indexOf(id string) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the collection; callers hold s.mu
func (s *Store) persistLocked() {
	data, err := EncodeSnapshot(s.contacts)
	if err != nil {
		s.log.Error("failed to encode contacts", zap.Error(err))
		return
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		s.log.Error("failed to persist contacts",
			zap.String("path", s.path),
			zap.Int("count", len(s.contacts)),
			zap.Error(err),
		)
		return
	}
	s.log.Debug("contacts persisted", zap.String("path", s.path), zap.Int("count", len(s.contacts)))
}

// writeFileAtomic writes to a temp file in the same directory and renames it into place
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
