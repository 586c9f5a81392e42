package port

import "docsearch/internal/domain"

// Manifest remembers which documents have been ingested into an index.
type Manifest interface {
	PutDoc(doc domain.Document) error

	// PutDocs records a batch atomically where the backend allows it.
	PutDocs(docs []domain.Document) error

	// GetDoc returns an error wrapping domain.ErrNotFound for unknown paths.
	GetDoc(path string) (domain.Document, error)

	ListDocs() ([]domain.Document, error)

	Clear() error

	Close() error
}
