package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Word is an indexed term together with the documents it ranks highest in.
//
// DocumentCount counts every distinct document the term was recorded in and
// is never reduced when Documents is trimmed to MaxDocuments; the idf of a
// term therefore keeps using the untrimmed count.
type Word struct {
	Term           string
	Documents      []DocRecord
	DocumentCount  int
	TotalFrequency int
}

// NewWord creates a Word with no documents.
func NewWord(term string) *Word {
	return &Word{Term: term}
}

// CompareWords orders Words by term.
func CompareWords(a, b *Word) int {
	return strings.Compare(a.Term, b.Term)
}

// Empty reports whether the Word carries no term.
func (w *Word) Empty() bool {
	return w == nil || w.Term == ""
}

// AddDocument records one occurrence of the term in the named document.
func (w *Word) AddDocument(name string) {
	if i := w.indexOf(name); i >= 0 {
		w.Documents[i].Frequency++
	} else {
		w.Documents = append(w.Documents, DocRecord{Name: name, Frequency: 1})
		w.DocumentCount++
	}
	w.TotalFrequency++
}

// Document returns the i-th retained record.
func (w *Word) Document(i int) (DocRecord, error) {
	if i < 0 || i >= len(w.Documents) {
		return DocRecord{}, fmt.Errorf("document %d of %q (have %d): %w", i, w.Term, len(w.Documents), ErrIndexBounds)
	}
	return w.Documents[i], nil
}

// CalculateRanking recomputes the tf-idf ranking of every retained document,
// orders the records by ranking and keeps the best MaxDocuments.
func (w *Word) CalculateRanking(wordsPerDocument map[string]int, totalDocuments int) {
	idf := 1.0
	if totalDocuments > 0 && w.DocumentCount > 0 {
		idf = 1 + math.Log2(float64(totalDocuments)/float64(w.DocumentCount))
	}

	for i := range w.Documents {
		d := &w.Documents[i]
		total := wordsPerDocument[d.Name]
		if total <= 0 {
			d.Ranking = 0
			continue
		}
		d.Ranking = float64(d.Frequency) / float64(total) * idf * 10000
	}

	sort.SliceStable(w.Documents, func(i, j int) bool {
		return w.Documents[i].Ranking > w.Documents[j].Ranking
	})

	if len(w.Documents) > MaxDocuments {
		w.Documents = w.Documents[:MaxDocuments]
	}
}

// Clone returns a deep copy of the Word.
func (w *Word) Clone() *Word {
	c := *w
	c.Documents = append([]DocRecord(nil), w.Documents...)
	return &c
}

// Combine merges other into w (OR). Frequencies of shared documents are
// summed and the rest are appended.
func (w *Word) Combine(other *Word, corpus Corpus) *Word {
	w.Term += " or " + other.Term
	for _, od := range other.Documents {
		if i := w.indexOf(od.Name); i >= 0 {
			w.Documents[i].Frequency += od.Frequency
			continue
		}
		w.DocumentCount++
		w.Documents = append(w.Documents, od)
	}
	w.CalculateRanking(corpus.WordsPerDocument, corpus.Files)
	return w
}

// Intersect keeps only the documents w shares with other (AND), each with
// the smaller of the two frequencies.
func (w *Word) Intersect(other *Word, corpus Corpus) *Word {
	w.Term += " and " + other.Term
	kept := w.Documents[:0]
	for _, d := range w.Documents {
		j := other.indexOf(d.Name)
		if j < 0 {
			w.DocumentCount--
			continue
		}
		d.Frequency = min(d.Frequency, other.Documents[j].Frequency)
		kept = append(kept, d)
	}
	w.Documents = kept
	w.CalculateRanking(corpus.WordsPerDocument, corpus.Files)
	return w
}

// Difference drops every document of w that also appears in other (NOT).
func (w *Word) Difference(other *Word, corpus Corpus) *Word {
	w.Term += ", not " + other.Term
	kept := w.Documents[:0]
	for _, d := range w.Documents {
		if other.indexOf(d.Name) >= 0 {
			w.DocumentCount--
			continue
		}
		kept = append(kept, d)
	}
	w.Documents = kept
	w.CalculateRanking(corpus.WordsPerDocument, corpus.Files)
	return w
}

func (w *Word) indexOf(name string) int {
	for i := range w.Documents {
		if w.Documents[i].Name == name {
			return i
		}
	}
	return -1
}
