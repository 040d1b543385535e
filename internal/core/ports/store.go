package ports

import "go.trai.ch/varcss/internal/core/domain"

// DocumentStore persists a host document.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DocumentStore interface {
	// Load reads the document. A missing document yields an empty one.
	Load() (*domain.Document, error)

	// Save writes the document.
	Save(doc *domain.Document) error

	// Path returns the location of the document.
	Path() string

	// Digest returns a content digest of the last loaded or saved document.
	Digest() string
}
