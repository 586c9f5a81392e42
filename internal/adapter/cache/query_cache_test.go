package cache

import (
	"testing"
	"time"

	"docsearch/internal/domain"
)

func result(term string) *domain.Word {
	w := domain.NewWord(term)
	w.AddDocument("a.txt")
	return w
}

func TestQueryCache_GetPut(t *testing.T) {
	c := NewQueryCache(10, time.Minute)

	if _, ok := c.Get("whale"); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.Put("whale", result("whale"))

	got, ok := c.Get("whale")
	if !ok || got.Term != "whale" {
		t.Fatalf("expected hit, got %v %v", got, ok)
	}

	got.AddDocument("b.txt")
	again, _ := c.Get("whale")
	if len(again.Documents) != 1 {
		t.Error("mutating a returned result changed the cached entry")
	}

	hits, misses := c.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d/%d, want 2/1", hits, misses)
	}
}

func TestQueryCache_Evicts(t *testing.T) {
	c := NewQueryCache(2, time.Minute)
	c.Put("a", result("a"))
	c.Put("b", result("b"))
	c.Get("a")
	c.Put("c", result("c"))

	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry should be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry should survive")
	}
	if c.Size() != 2 {
		t.Errorf("expected size 2, got %d", c.Size())
	}
}

func TestQueryCache_Invalidate(t *testing.T) {
	c := NewQueryCache(10, time.Minute)
	c.Put("whale", result("whale"))
	c.Invalidate()

	if _, ok := c.Get("whale"); ok {
		t.Error("expected miss after invalidate")
	}
	if c.Size() != 0 {
		t.Errorf("expected empty cache, got %d", c.Size())
	}
}

func TestQueryCache_TTL(t *testing.T) {
	c := NewQueryCache(10, time.Nanosecond)
	c.Put("whale", result("whale"))
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("whale"); ok {
		t.Error("expected expired entry to miss")
	}
}
