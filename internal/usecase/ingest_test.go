package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docsearch/internal/adapter/analyzer"
	"docsearch/internal/adapter/fs"
	"docsearch/internal/adapter/index"
	"docsearch/internal/adapter/memstore"
	"docsearch/internal/metrics"
	"docsearch/internal/port"
)

type fixture struct {
	root     string
	paths    index.Paths
	index    port.Index
	manifest *memstore.MemoryStore
	ingest   *IngestUseCase
}

func newFixture(t *testing.T, backend string, files map[string]string) *fixture {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	state := t.TempDir()
	paths := index.Paths{
		Index:     filepath.Join(state, "index.txt"),
		WordCount: filepath.Join(state, "wordcount.txt"),
	}
	idx, err := index.New(backend, paths)
	if err != nil {
		t.Fatal(err)
	}
	manifest := memstore.NewMemoryStore()

	return &fixture{
		root:     root,
		paths:    paths,
		index:    idx,
		manifest: manifest,
		ingest: NewIngestUseCase(
			idx,
			manifest,
			fs.NewWalker([]string{"**/*.txt"}, nil),
			fs.Reader{},
			analyzer.NewTokenizer(false, 3),
			4,
			metrics.New(),
		),
	}
}

var library = map[string]string{
	"moby.txt":       "Call me Ishmael. The whale, the whale!\fThe white whale.",
	"jaws.txt":       "A shark circles the boat.",
	"poems/sea.txt":  "The sea, the sea, the whale sea.",
	"poems/skip.png": "binary whale",
}

func TestIngest_Build(t *testing.T) {
	for _, backend := range []string{"avl", "hash"} {
		t.Run(backend, func(t *testing.T) {
			f := newFixture(t, backend, library)

			var calls int
			corpus, result, err := f.ingest.Build(context.Background(), f.root, func(processed, total int, _ string) {
				calls++
				if processed > total {
					t.Errorf("progress %d of %d", processed, total)
				}
			})
			if err != nil {
				t.Fatal(err)
			}

			if result.FilesIndexed != 3 || calls != 3 {
				t.Errorf("indexed %d files with %d progress calls, want 3", result.FilesIndexed, calls)
			}
			if corpus.Files != 3 || corpus.Pages != 4 {
				t.Errorf("corpus files/pages = %d/%d, want 3/4", corpus.Files, corpus.Pages)
			}
			// call ishmael whale whale white whale | shark circles boat | sea sea whale sea
			if corpus.Words != 13 {
				t.Errorf("corpus words = %d, want 13", corpus.Words)
			}

			whale, err := f.index.Get("whale")
			if err != nil {
				t.Fatal(err)
			}
			if whale.DocumentCount != 2 || whale.TotalFrequency != 4 {
				t.Errorf("whale counters %d/%d, want 2/4", whale.DocumentCount, whale.TotalFrequency)
			}
			if filepath.Base(whale.Documents[0].Name) != "moby.txt" {
				t.Errorf("moby.txt should rank first for whale, got %v", whale.Documents)
			}

			if _, err := os.Stat(f.paths.Index); err != nil {
				t.Errorf("index not saved: %v", err)
			}
			docs, _ := f.manifest.ListDocs()
			if len(docs) != 3 {
				t.Errorf("manifest holds %d documents, want 3", len(docs))
			}
		})
	}
}

func TestIngest_Deterministic(t *testing.T) {
	a := newFixture(t, "avl", library)
	b := newFixture(t, "avl", library)
	b.ingest.workers = 1

	if _, _, err := a.ingest.Build(context.Background(), a.root, nil); err != nil {
		t.Fatal(err)
	}
	if _, _, err := b.ingest.Build(context.Background(), b.root, nil); err != nil {
		t.Fatal(err)
	}

	ta, tb := terms(a.index.FrequentTerms()), terms(b.index.FrequentTerms())
	if len(ta) != len(tb) {
		t.Fatalf("frequent terms differ: %v vs %v", ta, tb)
	}
	for i := range ta {
		if ta[i] != tb[i] {
			t.Fatalf("frequent terms differ at %d: %v vs %v", i, ta, tb)
		}
	}
}

func TestIngest_AddDocumentSkipsKnown(t *testing.T) {
	f := newFixture(t, "hash", library)
	ctx := context.Background()

	corpus, _, err := f.ingest.Build(ctx, f.root, nil)
	if err != nil {
		t.Fatal(err)
	}

	extra := filepath.Join(t.TempDir(), "extra.txt")
	if err := os.WriteFile(extra, []byte("whale song\fsecond page"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := f.ingest.AddDocument(ctx, &corpus, extra)
	if err != nil {
		t.Fatal(err)
	}
	if result.FilesIndexed != 1 || corpus.Files != 4 || corpus.Pages != 6 {
		t.Errorf("after add: indexed %d, corpus %d files %d pages", result.FilesIndexed, corpus.Files, corpus.Pages)
	}

	again, err := f.ingest.AddDocument(ctx, &corpus, extra)
	if err != nil {
		t.Fatal(err)
	}
	if again.FilesSkipped != 1 || again.FilesIndexed != 0 || corpus.Files != 4 {
		t.Errorf("re-adding should skip: %+v, corpus files %d", again, corpus.Files)
	}

	whale, _ := f.index.Get("whale")
	if whale.DocumentCount != 3 {
		t.Errorf("whale should appear in 3 documents, got %d", whale.DocumentCount)
	}
}

func TestIngest_AddDirectory(t *testing.T) {
	f := newFixture(t, "avl", map[string]string{"a.txt": "whale"})
	ctx := context.Background()
	corpus, _, err := f.ingest.Build(ctx, f.root, nil)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, name := range []string{"b.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("shark whale"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := f.ingest.AddDirectory(ctx, &corpus, dir, nil); err != nil {
		t.Fatal(err)
	}
	if corpus.Files != 3 || corpus.Words != 5 {
		t.Errorf("corpus files/words = %d/%d, want 3/5", corpus.Files, corpus.Words)
	}
	if corpus.Directory != f.root {
		t.Errorf("corpus directory changed to %s", corpus.Directory)
	}

	reloaded, err := index.New("avl", f.paths)
	if err != nil {
		t.Fatal(err)
	}
	saved, err := reloaded.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.Files != 3 || len(saved.WordsPerDocument) != 3 {
		t.Errorf("saved corpus %+v", saved)
	}
}

func TestIngest_Cancelled(t *testing.T) {
	f := newFixture(t, "avl", library)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := f.ingest.Build(ctx, f.root, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIngest_MissingRoot(t *testing.T) {
	f := newFixture(t, "avl", nil)
	if _, _, err := f.ingest.Build(context.Background(), filepath.Join(f.root, "missing"), nil); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestCountPages(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"one page", 1},
		{"one\ftwo", 2},
		{"one\ftwo\f", 2},
		{"\f\fthree\f\f", 1},
	}
	for _, tt := range tests {
		if got := CountPages(tt.text); got != tt.want {
			t.Errorf("CountPages(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
