// Package hashtable provides a fixed-size table of AVL trees holding Words.
// A term always lives in the shard selected by Hash, which makes the shard
// layout part of the on-disk format.
package hashtable

import (
	"fmt"

	"docsearch/internal/adapter/avl"
	"docsearch/internal/domain"
)

// Length is the number of shards.
const Length = 10000

// Table is an array of Length Word trees.
type Table struct {
	shards [Length]*avl.Tree[*domain.Word]
	size   int
}

// New creates a table with every shard empty.
func New() *Table {
	t := &Table{}
	for i := range t.shards {
		t.shards[i] = avl.New(domain.CompareWords)
	}
	return t
}

// Hash maps a key to its shard using djb2. It carries no seed so shard
// placement is identical across processes. Bytes are added unsigned, so
// terms with non-ASCII letters land in different shards than in HASH files
// written by tools that add signed chars.
func Hash(key string) int {
	var h uint64 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return int(h % Length)
}

// Insert stores w unless its term is already present and returns the stored Word.
func (t *Table) Insert(w *domain.Word) *domain.Word {
	stored, inserted := t.shards[Hash(w.Term)].Insert(w)
	if inserted {
		t.size++
	}
	return stored
}

// Find returns the Word for term.
func (t *Table) Find(term string) (*domain.Word, error) {
	w, err := t.shards[Hash(term)].Find(&domain.Word{Term: term})
	if err != nil {
		return nil, fmt.Errorf("term %q: %w", term, err)
	}
	return w, nil
}

// Shard returns the tree at position i.
func (t *Table) Shard(i int) (*avl.Tree[*domain.Word], error) {
	if i < 0 || i >= Length {
		return nil, fmt.Errorf("shard %d (table length %d): %w", i, Length, domain.ErrIndexBounds)
	}
	return t.shards[i], nil
}

// SetShard replaces the tree at position i.
func (t *Table) SetShard(i int, tree *avl.Tree[*domain.Word]) error {
	old, err := t.Shard(i)
	if err != nil {
		return err
	}
	t.size += tree.Len() - old.Len()
	t.shards[i] = tree
	return nil
}

// Clear empties every shard.
func (t *Table) Clear() {
	for _, s := range t.shards {
		s.Clear()
	}
	t.size = 0
}

// Len returns the number of stored Words.
func (t *Table) Len() int {
	return t.size
}

// Walk visits every Word, shard by shard, each shard in preorder.
func (t *Table) Walk(fn func(*domain.Word)) {
	for _, s := range t.shards {
		s.PreOrder(fn)
	}
}
