package memstore

import (
	"fmt"
	"sort"
	"sync"

	"docsearch/internal/domain"
	"docsearch/internal/port"
)

var _ port.Manifest = (*MemoryStore)(nil)

// MemoryStore is a Manifest that lives only as long as the process.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]domain.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]domain.Document),
	}
}

func (s *MemoryStore) PutDoc(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Path] = doc
	return nil
}

func (s *MemoryStore) PutDocs(docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		s.docs[doc.Path] = doc
	}
	return nil
}

func (s *MemoryStore) GetDoc(path string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[path]
	if !ok {
		return domain.Document{}, fmt.Errorf("document %s: %w", path, domain.ErrNotFound)
	}
	return doc, nil
}

func (s *MemoryStore) ListDocs() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.docs)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
