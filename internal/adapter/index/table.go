package index

import (
	"fmt"
	"io"

	"docsearch/internal/adapter/hashtable"
	"docsearch/internal/domain"
)

// TableIndex keeps Words in a hashtable.Table of AVL trees.
type TableIndex struct {
	*engine
	s *tableStore
}

// NewTableIndex returns an empty TableIndex persisting to paths.
func NewTableIndex(paths Paths) *TableIndex {
	s := &tableStore{table: hashtable.New()}
	return &TableIndex{engine: newEngine(s, paths, "hash table"), s: s}
}

type tableStore struct {
	table *hashtable.Table
}

func (s *tableStore) insert(w *domain.Word) *domain.Word {
	return s.table.Insert(w)
}

func (s *tableStore) find(term string) (*domain.Word, error) {
	return s.table.Find(term)
}

func (s *tableStore) clear()         { s.table.Clear() }
func (s *tableStore) len() int       { return s.table.Len() }
func (s *tableStore) format() string { return FormatTable }

func (s *tableStore) walk(fn func(*domain.Word)) {
	s.table.Walk(fn)
}

func (s *tableStore) encode(w io.Writer) error {
	for i := 0; i < hashtable.Length; i++ {
		shard, err := s.table.Shard(i)
		if err != nil {
			return err
		}
		if err := writeTree(w, shard); err != nil {
			return err
		}
	}
	return nil
}

// decode reads one tree block per shard and rejects a Word stored in the
// wrong shard.
func (s *tableStore) decode(r *lineReader) error {
	for i := 0; i < hashtable.Length; i++ {
		tree, err := readTree(r)
		if err != nil {
			return fmt.Errorf("shard %d: %w", i, err)
		}
		var misplaced *domain.Word
		tree.InOrder(func(w *domain.Word) bool {
			if hashtable.Hash(w.Term) != i {
				misplaced = w
				return false
			}
			return true
		})
		if misplaced != nil {
			return fmt.Errorf("term %q found in shard %d: %w", misplaced.Term, i, domain.ErrInvalidFormat)
		}
		if err := s.table.SetShard(i, tree); err != nil {
			return err
		}
	}
	return nil
}
