// Package index implements port.Index on top of a single AVL tree
// (TreeIndex) or a sharded table of trees (TableIndex). Both persist to the
// same text format and can load a file written by the other.
package index

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"docsearch/internal/domain"
	"docsearch/internal/logger"
	"docsearch/internal/port"
)

// Paths locates the index file and its word-count sidecar.
type Paths struct {
	Index     string
	WordCount string
}

// store is the structure an engine keeps its Words in.
type store interface {
	insert(w *domain.Word) *domain.Word
	find(term string) (*domain.Word, error)
	clear()
	len() int
	walk(fn func(*domain.Word))
	format() string
	encode(w io.Writer) error
	decode(r *lineReader) error
}

var (
	_ port.Index = (*TreeIndex)(nil)
	_ port.Index = (*TableIndex)(nil)
)

// engine holds the behaviour shared by both index types.
type engine struct {
	store    store
	paths    Paths
	frequent *frequentTerms
	empty    bool
	dataType string
	log      *slog.Logger
}

func newEngine(s store, paths Paths, dataType string) *engine {
	return &engine{
		store:    s,
		paths:    paths,
		frequent: newFrequentTerms(),
		empty:    true,
		dataType: dataType,
		log:      logger.WithComponent("index"),
	}
}

// New returns the index for backend, "avl" or "hash".
func New(backend string, paths Paths) (port.Index, error) {
	switch backend {
	case "avl", "tree", "":
		return NewTreeIndex(paths), nil
	case "hash", "table":
		return NewTableIndex(paths), nil
	default:
		return nil, fmt.Errorf("unknown index backend %q", backend)
	}
}

func (e *engine) Insert(term string) *domain.Word {
	w := e.store.insert(domain.NewWord(term))
	e.frequent.track(w)
	e.empty = false
	return w
}

func (e *engine) InsertDocument(term, document string) *domain.Word {
	w := e.store.insert(domain.NewWord(term))
	w.AddDocument(document)
	e.frequent.track(w)
	e.empty = false
	return w
}

func (e *engine) Get(term string) (*domain.Word, error) {
	return e.store.find(term)
}

func (e *engine) Empty() bool {
	return e.empty
}

func (e *engine) Clear() {
	e.store.clear()
	e.frequent.reset()
	e.empty = true
}

func (e *engine) Len() int {
	return e.store.len()
}

func (e *engine) Walk(fn func(*domain.Word)) {
	e.store.walk(fn)
}

func (e *engine) DataType() string {
	return e.dataType
}

func (e *engine) FrequentTerms() []*domain.Word {
	return e.frequent.list()
}

func (e *engine) RecalculateRanking(corpus domain.Corpus) {
	e.store.walk(func(w *domain.Word) {
		w.CalculateRanking(corpus.WordsPerDocument, corpus.Files)
	})
}

// Save writes the index file and the word-count sidecar.
func (e *engine) Save(corpus domain.Corpus) error {
	err := writeFile(e.paths.Index, func(w io.Writer) error {
		if err := writeHeader(w, corpus, e.store.format()); err != nil {
			return err
		}
		return e.store.encode(w)
	})
	if err != nil {
		return fmt.Errorf("save index: %w", err)
	}

	err = writeFile(e.paths.WordCount, func(w io.Writer) error {
		return writeWordCounts(w, corpus.WordsPerDocument)
	})
	if err != nil {
		return fmt.Errorf("save word counts: %w", err)
	}

	e.log.Debug("index saved", "path", e.paths.Index, "format", e.store.format(), "terms", e.store.len())
	return nil
}

// Load replaces the contents with the index file. On failure the index is
// left empty.
func (e *engine) Load() (domain.Corpus, error) {
	e.Clear()

	corpus, err := e.load()
	if err != nil {
		e.Clear()
		if !errors.Is(err, domain.ErrInvalidFormat) {
			err = fmt.Errorf("%w: %w", domain.ErrInvalidFormat, err)
		}
		return domain.Corpus{}, fmt.Errorf("load index: %w", err)
	}

	e.store.walk(e.frequent.track)
	e.empty = false
	e.log.Debug("index loaded", "path", e.paths.Index, "terms", e.store.len(), "files", corpus.Files)
	return corpus, nil
}

func (e *engine) load() (domain.Corpus, error) {
	f, err := os.Open(e.paths.Index)
	if err != nil {
		return domain.Corpus{}, err
	}
	defer f.Close()

	r := newLineReader(f)
	corpus, format, err := readHeader(r)
	if err != nil {
		return domain.Corpus{}, err
	}

	if format == e.store.format() {
		err = e.store.decode(r)
	} else {
		e.log.Info("loading index written by the other backend", "format", format)
		err = readWords(r, func(w *domain.Word) { e.store.insert(w) })
	}
	if err != nil {
		return domain.Corpus{}, err
	}

	sidecar, err := os.Open(e.paths.WordCount)
	if err != nil {
		return domain.Corpus{}, err
	}
	defer sidecar.Close()

	counts, err := readWordCounts(sidecar)
	if err != nil {
		return domain.Corpus{}, err
	}
	corpus.WordsPerDocument = counts
	return corpus, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
