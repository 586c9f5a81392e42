package port

import "docsearch/internal/domain"

// Index is an inverted index of Words. TreeIndex and TableIndex in
// internal/adapter/index are its only implementations.
type Index interface {
	// Insert adds the term if absent and returns the stored Word.
	Insert(term string) *domain.Word

	// InsertDocument records one occurrence of term in document.
	InsertDocument(term, document string) *domain.Word

	// Get returns the stored Word or an error wrapping domain.ErrNotFound.
	Get(term string) (*domain.Word, error)

	Empty() bool

	Clear()

	// Load replaces the contents with the persisted index and returns the
	// corpus counters stored with it.
	Load() (domain.Corpus, error)

	// Save persists the index and the corpus counters.
	Save(corpus domain.Corpus) error

	RecalculateRanking(corpus domain.Corpus)

	// FrequentTerms returns up to 50 Words by descending total frequency.
	FrequentTerms() []*domain.Word

	// DataType names the backing structure.
	DataType() string

	Len() int

	Walk(fn func(*domain.Word))
}
