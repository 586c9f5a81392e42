package avl

// Encode walks the tree in preorder. Every stored value is reported with
// present=true and every absent child with present=false, so the stream
// can be decoded without a node count. An empty tree yields a single
// absent marker.
func (t *Tree[T]) Encode(visit func(v T, present bool) error) error {
	return encode(t.root, visit)
}

func encode[T any](n *node[T], visit func(v T, present bool) error) error {
	if n == nil {
		var zero T
		return visit(zero, false)
	}
	if err := visit(n.value, true); err != nil {
		return err
	}
	if err := encode(n.left, visit); err != nil {
		return err
	}
	return encode(n.right, visit)
}

// Decode rebuilds a tree from a preorder stream produced by Encode. next
// returns the following entry of the stream. Heights are recomputed from
// the decoded shape; the ordering of the stream is trusted.
func Decode[T any](cmp func(a, b T) int, next func() (v T, present bool, err error)) (*Tree[T], error) {
	t := New(cmp)
	root, err := decode(next, &t.size)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func decode[T any](next func() (T, bool, error), size *int) (*node[T], error) {
	v, present, err := next()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	n := &node[T]{value: v}
	*size++
	if n.left, err = decode(next, size); err != nil {
		return nil, err
	}
	if n.right, err = decode(next, size); err != nil {
		return nil, err
	}
	fixHeight(n)
	return n, nil
}
