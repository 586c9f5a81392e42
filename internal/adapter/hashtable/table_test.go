package hashtable

import (
	"errors"
	"testing"

	"docsearch/internal/adapter/avl"
	"docsearch/internal/domain"
)

func TestHash_Stable(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"", 5381},
		{"a", (5381*33 + 'a') % Length},
		{"ab", ((5381*33+'a')*33 + 'b') % Length},
		// "é" is 0xC3 0xA9; bytes are added unsigned.
		{"é", ((5381*33+0xC3)*33 + 0xA9) % Length},
	}
	for _, tt := range tests {
		if got := Hash(tt.key); got != tt.want {
			t.Errorf("Hash(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestHash_InRange(t *testing.T) {
	for _, key := range []string{"whale", "antidisestablishmentarianism", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"} {
		if h := Hash(key); h < 0 || h >= Length {
			t.Errorf("Hash(%q) = %d out of range", key, h)
		}
	}
}

func TestInsertFind(t *testing.T) {
	tab := New()

	w := tab.Insert(domain.NewWord("whale"))
	w.AddDocument("moby.txt")

	again := tab.Insert(domain.NewWord("whale"))
	if again != w {
		t.Error("re-insert should return the stored Word")
	}
	if tab.Len() != 1 {
		t.Errorf("expected 1 word, got %d", tab.Len())
	}

	got, err := tab.Find("whale")
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalFrequency != 1 {
		t.Errorf("expected frequency 1, got %d", got.TotalFrequency)
	}

	shard, _ := tab.Shard(Hash("whale"))
	if shard.Len() != 1 {
		t.Errorf("expected the word in shard %d", Hash("whale"))
	}

	if _, err := tab.Find("squid"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestShard_Bounds(t *testing.T) {
	tab := New()
	for _, i := range []int{-1, Length, Length + 5} {
		if _, err := tab.Shard(i); !errors.Is(err, domain.ErrIndexBounds) {
			t.Errorf("Shard(%d): expected ErrIndexBounds, got %v", i, err)
		}
	}
	if _, err := tab.Shard(Length - 1); err != nil {
		t.Errorf("Shard(%d): %v", Length-1, err)
	}
}

func TestSetShard_TracksSize(t *testing.T) {
	tab := New()
	tab.Insert(domain.NewWord("alpha"))

	tree := avl.New(domain.CompareWords)
	tree.Insert(domain.NewWord("beta"))
	tree.Insert(domain.NewWord("gamma"))

	if err := tab.SetShard(Hash("alpha"), tree); err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 2 {
		t.Errorf("expected 2 words after replacing shard, got %d", tab.Len())
	}
}

func TestClearAndWalk(t *testing.T) {
	tab := New()
	terms := []string{"cat", "dog", "bat", "owl", "eel"}
	for _, term := range terms {
		tab.Insert(domain.NewWord(term))
	}

	seen := make(map[string]bool)
	tab.Walk(func(w *domain.Word) { seen[w.Term] = true })
	if len(seen) != len(terms) {
		t.Errorf("walk visited %d words, want %d", len(seen), len(terms))
	}

	tab.Clear()
	if tab.Len() != 0 {
		t.Errorf("expected empty table, got %d", tab.Len())
	}
	if _, err := tab.Find("cat"); err == nil {
		t.Error("expected miss after clear")
	}
}
