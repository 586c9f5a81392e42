package index

import (
	"io"

	"docsearch/internal/adapter/avl"
	"docsearch/internal/domain"
)

// TreeIndex keeps every Word in one AVL tree.
type TreeIndex struct {
	*engine
	s *treeStore
}

// NewTreeIndex returns an empty TreeIndex persisting to paths.
func NewTreeIndex(paths Paths) *TreeIndex {
	s := &treeStore{tree: avl.New(domain.CompareWords)}
	return &TreeIndex{engine: newEngine(s, paths, "AVL tree"), s: s}
}

// Height returns the height of the underlying tree.
func (t *TreeIndex) Height() int {
	return t.s.tree.Height()
}

type treeStore struct {
	tree *avl.Tree[*domain.Word]
}

func (s *treeStore) insert(w *domain.Word) *domain.Word {
	stored, _ := s.tree.Insert(w)
	return stored
}

func (s *treeStore) find(term string) (*domain.Word, error) {
	return s.tree.Find(&domain.Word{Term: term})
}

func (s *treeStore) clear()         { s.tree.Clear() }
func (s *treeStore) len() int       { return s.tree.Len() }
func (s *treeStore) format() string { return FormatTree }

func (s *treeStore) walk(fn func(*domain.Word)) {
	s.tree.PreOrder(fn)
}

func (s *treeStore) encode(w io.Writer) error {
	return writeTree(w, s.tree)
}

func (s *treeStore) decode(r *lineReader) error {
	tree, err := readTree(r)
	if err != nil {
		return err
	}
	s.tree = tree
	return nil
}
