package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.txt":                 "b",
		"a.txt":                 "a",
		"notes/c.md":            "c",
		"notes/image.png":       "x",
		".docsearch/index.txt":  "idx",
		"vendor/lib/readme.txt": "v",
	})

	w := NewWalker([]string{"**/*.txt", "**/*.md"}, []string{"**/.docsearch/**", "vendor/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range files {
		rel, _ := filepath.Rel(root, f.Path)
		got = append(got, filepath.ToSlash(rel))
	}
	want := []string{"a.txt", "b.txt", "notes/c.md"}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Walk()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWalker_SkipsStateDirWithCustomExcludes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.txt":                      "a",
		".docsearch/index.txt":       "idx",
		".docsearch/wordcount.txt":   "1",
		"books/.docsearch/index.txt": "nested idx",
		"books/moby.txt":             "whale",
		"drafts/unfinished.txt":      "draft",
	})

	files, err := NewWalker([]string{"**/*.txt"}, []string{"**/drafts/**", "drafts/**"}).Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range files {
		rel, _ := filepath.Rel(root, f.Path)
		got = append(got, filepath.ToSlash(rel))
	}
	want := []string{"a.txt", "books/moby.txt"}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Walk()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWalker_SingleFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"doc.pdf": "text"})

	files, err := NewWalker(nil, nil).Walk(filepath.Join(root, "doc.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Size != 4 {
		t.Errorf("expected the single file, got %+v", files)
	}
}

func TestWalker_MissingRoot(t *testing.T) {
	if _, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestReader(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.txt": "whale"})

	got, err := Reader{}.ReadFile(filepath.Join(root, "a.txt"))
	if err != nil || got != "whale" {
		t.Errorf("ReadFile() = %q, %v", got, err)
	}
}
