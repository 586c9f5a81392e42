package analyzer

import "github.com/kljensen/snowball/english"

// Stemmer reduces English words to their Porter2 stem.
type Stemmer struct{}

func NewStemmer() *Stemmer {
	return &Stemmer{}
}

// Stem expects a lowercase word.
func (s *Stemmer) Stem(word string) string {
	return english.Stem(word, true)
}
