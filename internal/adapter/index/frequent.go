package index

import (
	"slices"

	"docsearch/internal/domain"
)

// MaxFrequentTerms bounds the frequent-term list.
const MaxFrequentTerms = 50

// frequentTerms keeps the most frequent Words ordered by total frequency,
// ties broken by the order in which the Words were first tracked.
type frequentTerms struct {
	words []*domain.Word
	seq   map[*domain.Word]uint64
	next  uint64
}

func newFrequentTerms() *frequentTerms {
	return &frequentTerms{
		words: make([]*domain.Word, 0, MaxFrequentTerms),
		seq:   make(map[*domain.Word]uint64),
	}
}

// track moves w into place after its frequency changed. An untracked Word
// only enters a full list when it beats the current last entry.
func (f *frequentTerms) track(w *domain.Word) {
	i := slices.Index(f.words, w)
	if i < 0 {
		if len(f.words) >= MaxFrequentTerms {
			last := f.words[len(f.words)-1]
			if !f.less(w, last) {
				return
			}
			delete(f.seq, last)
			f.words = f.words[:len(f.words)-1]
		}
		f.seq[w] = f.next
		f.next++
		f.words = append(f.words, w)
		i = len(f.words) - 1
	}
	for i > 0 && f.less(f.words[i], f.words[i-1]) {
		f.words[i], f.words[i-1] = f.words[i-1], f.words[i]
		i--
	}
}

// less reports whether a ranks before b. An untracked a counts as newest.
func (f *frequentTerms) less(a, b *domain.Word) bool {
	if a.TotalFrequency != b.TotalFrequency {
		return a.TotalFrequency > b.TotalFrequency
	}
	sa, ok := f.seq[a]
	if !ok {
		return false
	}
	return sa < f.seq[b]
}

func (f *frequentTerms) list() []*domain.Word {
	return slices.Clone(f.words)
}

func (f *frequentTerms) reset() {
	f.words = f.words[:0]
	clear(f.seq)
	f.next = 0
}
