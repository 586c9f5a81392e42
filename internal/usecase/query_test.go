package usecase

import (
	"testing"

	"docsearch/internal/adapter/analyzer"
	"docsearch/internal/adapter/index"
	"docsearch/internal/domain"
	"docsearch/internal/port"
)

// animals indexes cat in X five times and dog in X twice and Y once.
func animals() (port.Index, domain.Corpus) {
	idx := index.NewTreeIndex(index.Paths{})
	for i := 0; i < 5; i++ {
		idx.InsertDocument("cat", "X")
	}
	idx.InsertDocument("dog", "X")
	idx.InsertDocument("dog", "X")
	idx.InsertDocument("dog", "Y")
	idx.InsertDocument("owl", "Z")

	corpus := domain.Corpus{
		Files:            3,
		WordsPerDocument: map[string]int{"X": 50, "Y": 50, "Z": 50},
	}
	idx.RecalculateRanking(corpus)
	return idx, corpus
}

func docFrequencies(w *domain.Word) map[string]int {
	m := make(map[string]int)
	for _, d := range w.Documents {
		m[d.Name] = d.Frequency
	}
	return m
}

func TestQueryProcessor_Process(t *testing.T) {
	p := NewQueryProcessor(analyzer.NewTokenizer(false, 3))

	tests := []struct {
		query string
		label string
		want  map[string]int
	}{
		{"OR cat dog", "cat or dog", map[string]int{"X": 7, "Y": 1}},
		{"cat dog", "cat or dog", map[string]int{"X": 7, "Y": 1}},
		{"AND cat dog", "cat and dog", map[string]int{"X": 2}},
		{"dog NOT cat", "dog, not cat", map[string]int{"Y": 1}},
		{"dog AND owl", "dog and owl", map[string]int{}},
		{"AND cat dog OR owl", "cat and dog or owl", map[string]int{"X": 2, "Z": 1}},
		{"cat", "cat", map[string]int{"X": 5}},
		{"cat squid", "cat", map[string]int{"X": 5}},
		{"Cat the ox", "cat", map[string]int{"X": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			idx, corpus := animals()
			got := p.Process(tt.query, idx, corpus)

			if got.Term != tt.label {
				t.Errorf("label = %q, want %q", got.Term, tt.label)
			}
			f := docFrequencies(got)
			if len(f) != len(tt.want) {
				t.Fatalf("documents = %v, want %v", f, tt.want)
			}
			for name, n := range tt.want {
				if f[name] != n {
					t.Errorf("frequency of %s = %d, want %d", name, f[name], n)
				}
			}
		})
	}
}

func TestQueryProcessor_NoMatch(t *testing.T) {
	p := NewQueryProcessor(analyzer.NewTokenizer(false, 3))
	idx, corpus := animals()

	for _, q := range []string{"", "squid", "NOT cat", "NOT cat dog", "AND OR NOT"} {
		got := p.Process(q, idx, corpus)
		if got == nil || !got.Empty() {
			t.Errorf("Process(%q) = %+v, want empty word", q, got)
		}
	}
}

func TestQueryProcessor_DoesNotMutateIndex(t *testing.T) {
	p := NewQueryProcessor(analyzer.NewTokenizer(false, 3))
	idx, corpus := animals()

	p.Process("cat dog", idx, corpus)
	p.Process("AND cat owl", idx, corpus)

	cat, err := idx.Get("cat")
	if err != nil {
		t.Fatal(err)
	}
	if cat.Term != "cat" || len(cat.Documents) != 1 || cat.Documents[0].Frequency != 5 {
		t.Errorf("stored word changed: %+v", cat)
	}
}

func TestQueryProcessor_Skipped(t *testing.T) {
	p := NewQueryProcessor(analyzer.NewTokenizer(true, 3))
	idx, corpus := animals()

	got := p.Run("the cats ox", idx, corpus)
	if len(got.Skipped) != 2 {
		t.Fatalf("expected 2 skipped words, got %v", got.Skipped)
	}
	if got.Skipped[0] != (SkippedWord{Word: "the", Reason: "common word"}) {
		t.Errorf("unexpected first skip %+v", got.Skipped[0])
	}
	if got.Skipped[1] != (SkippedWord{Word: "ox", Reason: "too short"}) {
		t.Errorf("unexpected second skip %+v", got.Skipped[1])
	}
	if got.Word.Term != "cat" {
		t.Errorf("stemmed lookup should find cat, got %q", got.Word.Term)
	}
}

func terms(words []*domain.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Term
	}
	return out
}
