package avl

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"docsearch/internal/domain"
)

// checkInvariants verifies heights, balance and ordering of every node.
func checkInvariants[T any](t *testing.T, tr *Tree[T]) {
	t.Helper()
	var walk func(n *node[T]) int
	walk = func(n *node[T]) int {
		if n == nil {
			return -1
		}
		lh, rh := walk(n.left), walk(n.right)
		if n.height != max(lh, rh)+1 {
			t.Fatalf("node %v: height %d, want %d", n.value, n.height, max(lh, rh)+1)
		}
		if d := lh - rh; d < -1 || d > 1 {
			t.Fatalf("node %v: balance %d", n.value, d)
		}
		if n.left != nil && tr.cmp(n.left.value, n.value) >= 0 {
			t.Fatalf("node %v: left child %v out of order", n.value, n.left.value)
		}
		if n.right != nil && tr.cmp(n.right.value, n.value) <= 0 {
			t.Fatalf("node %v: right child %v out of order", n.value, n.right.value)
		}
		return n.height
	}
	walk(tr.root)
}

func TestInsert_SingleRotation(t *testing.T) {
	tr := NewOrdered[string]()
	for _, s := range []string{"ant", "bat", "cat"} {
		tr.Insert(s)
	}

	root, ok := tr.Root()
	if !ok || root != "bat" {
		t.Errorf("expected root bat, got %q", root)
	}
	if tr.Height() != 1 {
		t.Errorf("expected height 1, got %d", tr.Height())
	}
	checkInvariants(t, tr)
}

func TestInsert_NoRotationWhenBalanced(t *testing.T) {
	tr := NewOrdered[string]()
	for _, s := range []string{"cat", "bat", "dog"} {
		tr.Insert(s)
	}

	root, _ := tr.Root()
	if root != "cat" {
		t.Errorf("expected root cat, got %q", root)
	}
	checkInvariants(t, tr)
}

func TestInsert_RotationCases(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		root  int
	}{
		{"right-left", []int{10, 30, 20}, 20},
		{"left-right", []int{30, 10, 20}, 20},
		{"left-left", []int{30, 20, 10}, 20},
	}

	for _, tt := range tests {
		tr := NewOrdered[int]()
		for _, v := range tt.input {
			tr.Insert(v)
		}
		root, _ := tr.Root()
		if root != tt.root {
			t.Errorf("%s: expected root %d, got %d", tt.name, tt.root, root)
		}
		checkInvariants(t, tr)
	}
}

func TestInsert_Duplicate(t *testing.T) {
	type entry struct {
		key string
		val int
	}
	tr := New(func(a, b *entry) int { return strings.Compare(a.key, b.key) })

	first := &entry{key: "whale", val: 1}
	tr.Insert(first)
	tr.Insert(&entry{key: "alpha"})
	before := tr.Height()

	stored, inserted := tr.Insert(&entry{key: "whale", val: 2})
	if inserted {
		t.Error("duplicate should not be inserted")
	}
	if stored != first {
		t.Error("expected the originally stored value back")
	}
	if tr.Len() != 2 {
		t.Errorf("expected 2 values, got %d", tr.Len())
	}
	if tr.Height() != before {
		t.Errorf("height changed from %d to %d", before, tr.Height())
	}
}

func TestInsert_RandomKeepsInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tr := NewOrdered[int]()
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v := r.Intn(5000)
		_, inserted := tr.Insert(v)
		if inserted == seen[v] {
			t.Fatalf("insert %d: inserted=%v but seen=%v", v, inserted, seen[v])
		}
		seen[v] = true
	}
	checkInvariants(t, tr)

	if tr.Len() != len(seen) {
		t.Errorf("expected %d values, got %d", len(seen), tr.Len())
	}

	prev := -1
	count := 0
	tr.InOrder(func(v int) bool {
		if v <= prev {
			t.Fatalf("inorder not ascending: %d after %d", v, prev)
		}
		prev = v
		count++
		return true
	})
	if count != len(seen) {
		t.Errorf("inorder visited %d values, want %d", count, len(seen))
	}
}

func TestFind(t *testing.T) {
	tr := NewOrdered[string]()
	for _, s := range []string{"delta", "alpha", "charlie", "bravo"} {
		tr.Insert(s)
	}

	got, err := tr.Find("charlie")
	if err != nil || got != "charlie" {
		t.Errorf("Find(charlie) = %q, %v", got, err)
	}

	_, err = tr.Find("echo")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClearAndClone(t *testing.T) {
	tr := NewOrdered[int]()
	for i := 0; i < 100; i++ {
		tr.Insert(i)
	}

	cp := tr.Clone()
	tr.Clear()

	if tr.Len() != 0 || tr.Height() != -1 {
		t.Errorf("cleared tree has len %d height %d", tr.Len(), tr.Height())
	}
	if _, err := tr.Find(5); err == nil {
		t.Error("expected cleared tree to miss")
	}
	if cp.Len() != 100 {
		t.Errorf("clone has %d values, want 100", cp.Len())
	}
	if _, err := cp.Find(99); err != nil {
		t.Errorf("clone lost value: %v", err)
	}
	checkInvariants(t, cp)

	cp.Insert(1000)
	if tr.Len() != 0 {
		t.Error("mutating the clone changed the original")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tr := NewOrdered[int]()
	for _, v := range []int{50, 20, 80, 10, 30, 70, 90, 25} {
		tr.Insert(v)
	}

	var stream []string
	err := tr.Encode(func(v int, present bool) error {
		if !present {
			stream = append(stream, "$$$")
			return nil
		}
		stream = append(stream, fmt.Sprint(v))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if stream[0] != "30" && stream[0] != "50" {
		t.Fatalf("stream should start at the root, got %v", stream)
	}

	pos := 0
	decoded, err := Decode(tr.cmp, func() (int, bool, error) {
		if pos >= len(stream) {
			return 0, false, errors.New("stream exhausted")
		}
		tok := stream[pos]
		pos++
		if tok == "$$$" {
			return 0, false, nil
		}
		var v int
		_, err := fmt.Sscan(tok, &v)
		return v, true, err
	})
	if err != nil {
		t.Fatal(err)
	}
	if pos != len(stream) {
		t.Errorf("decode consumed %d of %d entries", pos, len(stream))
	}
	if decoded.Len() != tr.Len() || decoded.Height() != tr.Height() {
		t.Errorf("decoded len/height %d/%d, want %d/%d", decoded.Len(), decoded.Height(), tr.Len(), tr.Height())
	}
	checkInvariants(t, decoded)
}

func TestEncode_EmptyTree(t *testing.T) {
	tr := NewOrdered[int]()
	markers := 0
	tr.Encode(func(_ int, present bool) error {
		if !present {
			markers++
		}
		return nil
	})
	if markers != 1 {
		t.Errorf("expected a single absent marker, got %d", markers)
	}
}
