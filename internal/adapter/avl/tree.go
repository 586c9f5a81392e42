// Package avl implements a generic self-balancing binary search tree.
//
// Every edge of the tree is owned by exactly one parent; rotations are pure
// functions that return the new root of the rotated subtree and leave it to
// the caller to rewrite the parent edge.
package avl

import (
	"cmp"
	"fmt"

	"docsearch/internal/domain"
)

type node[T any] struct {
	value       T
	left, right *node[T]
	height      int
}

// Tree is an AVL tree ordered by a comparison function.
type Tree[T any] struct {
	root *node[T]
	size int
	cmp  func(a, b T) int
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// NewOrdered creates an empty tree using the natural ordering of T.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// Len returns the number of stored values.
func (t *Tree[T]) Len() int {
	return t.size
}

// Height returns the height of the root, -1 for an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Root returns the value stored at the root.
func (t *Tree[T]) Root() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.value, true
}

// Insert adds v unless an equal value is already stored. It returns the
// stored value and whether v was inserted.
func (t *Tree[T]) Insert(v T) (T, bool) {
	var stored T
	var inserted bool
	t.root = t.insert(t.root, v, &stored, &inserted)
	if inserted {
		t.size++
	}
	return stored, inserted
}

func (t *Tree[T]) insert(n *node[T], v T, stored *T, inserted *bool) *node[T] {
	if n == nil {
		*stored = v
		*inserted = true
		return &node[T]{value: v}
	}

	switch c := t.cmp(v, n.value); {
	case c < 0:
		n.left = t.insert(n.left, v, stored, inserted)
	case c > 0:
		n.right = t.insert(n.right, v, stored, inserted)
	default:
		*stored = n.value
		return n
	}

	if !*inserted {
		return n
	}
	return rebalance(n)
}

// Find returns the stored value equal to v.
func (t *Tree[T]) Find(v T) (T, error) {
	n := t.root
	for n != nil {
		switch c := t.cmp(v, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("tree lookup: %w", domain.ErrNotFound)
}

// Clear drops every node.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Clone returns an independent copy with the same shape and heights.
// Values are copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: clone(t.root), size: t.size, cmp: t.cmp}
}

func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value:  n.value,
		left:   clone(n.left),
		right:  clone(n.right),
		height: n.height,
	}
}

// InOrder visits values in ascending order until fn returns false.
func (t *Tree[T]) InOrder(fn func(T) bool) {
	inOrder(t.root, fn)
}

func inOrder[T any](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, fn) && fn(n.value) && inOrder(n.right, fn)
}

// PreOrder visits every value root first.
func (t *Tree[T]) PreOrder(fn func(T)) {
	preOrder(t.root, fn)
}

func preOrder[T any](n *node[T], fn func(T)) {
	if n == nil {
		return
	}
	fn(n.value)
	preOrder(n.left, fn)
	preOrder(n.right, fn)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func balance[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func fixHeight[T any](n *node[T]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// rebalance restores the AVL property at n and returns the new subtree root.
func rebalance[T any](n *node[T]) *node[T] {
	switch balance(n) {
	case -2:
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		n = rotateLeft(n)
	case 2:
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		n = rotateRight(n)
	}
	fixHeight(n)
	return n
}

// rotateLeft lifts the right child of a1 into its place.
func rotateLeft[T any](a1 *node[T]) *node[T] {
	a2 := a1.right
	a1.right = a2.left
	a2.left = a1
	fixHeight(a1)
	fixHeight(a2)
	return a2
}

// rotateRight lifts the left child of a1 into its place.
func rotateRight[T any](a1 *node[T]) *node[T] {
	a2 := a1.left
	a1.left = a2.right
	a2.right = a1
	fixHeight(a1)
	fixHeight(a2)
	return a2
}
