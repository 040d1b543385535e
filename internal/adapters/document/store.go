// Package document implements the host document as a JSON file.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.DocumentStore using a flat JSON file.
type Store struct {
	path   string
	mu     sync.Mutex
	digest string
}

// NewStore creates a DocumentStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the location of the document file.
func (s *Store) Path() string {
	return s.path
}

// Digest returns the content digest of the last loaded or saved document.
func (s *Store) Digest() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.digest
}

// Load reads the document. A missing or empty file yields an empty document.
func (s *Store) Load() (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.digest = ""
			return &domain.Document{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", s.path)
	}

	s.digest = digestOf(data)
	if len(data) == 0 {
		return &domain.Document{}, nil
	}

	var f documentFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", s.path)
	}

	doc, err := fromFile(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", s.path)
	}
	return doc, nil
}

// Save writes the document. Writing identical content is skipped.
func (s *Store) Save(doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(toFile(doc), "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrDocumentMarshalFailed.Error())
	}
	data = append(data, '\n')

	digest := digestOf(data)
	if digest == s.digest {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", s.path)
	}

	s.digest = digest
	return nil
}

func digestOf(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
