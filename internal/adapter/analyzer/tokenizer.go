package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinLength is the shortest word kept as a term.
const DefaultMinLength = 3

// Tokenizer turns document text and query words into index terms: letters
// only, lowercased, stop words and short words dropped, optionally stemmed.
type Tokenizer struct {
	stemmer   *Stemmer
	minLength int
}

// NewTokenizer creates a Tokenizer. A minLength below 1 selects
// DefaultMinLength.
func NewTokenizer(useStemming bool, minLength int) *Tokenizer {
	var stemmer *Stemmer
	if useStemming {
		stemmer = NewStemmer()
	}
	if minLength < 1 {
		minLength = DefaultMinLength
	}
	return &Tokenizer{
		stemmer:   stemmer,
		minLength: minLength,
	}
}

// Tokenize returns the terms of text in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	words := splitWords(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if t.InvalidLength(word) || IsStopWord(word) {
			continue
		}
		tokens = append(tokens, t.stem(word))
	}

	return tokens
}

// CountTokens returns the number of words in text that would become terms.
func (t *Tokenizer) CountTokens(text string) int {
	n := 0
	for _, word := range splitWords(text) {
		if !t.InvalidLength(word) && !IsStopWord(word) {
			n++
		}
	}
	return n
}

// Normalize converts a single query word into a term. A word holding
// punctuation is split the way Tokenize splits document text, and the first
// letter run that is a valid term is used. Otherwise the reason reported is
// that of the first run.
func (t *Tokenizer) Normalize(word string) (string, bool, string) {
	reason := "too short"
	for i, run := range splitWords(word) {
		r := t.reject(run)
		if r == "" {
			return t.stem(run), true, ""
		}
		if i == 0 {
			reason = r
		}
	}
	return "", false, reason
}

func (t *Tokenizer) reject(word string) string {
	switch {
	case t.InvalidLength(word):
		return "too short"
	case IsStopWord(word):
		return "common word"
	}
	return ""
}

// InvalidLength reports whether word is too short to be a term.
func (t *Tokenizer) InvalidLength(word string) bool {
	return utf8.RuneCountInString(word) < t.minLength
}

// IsStopWord reports whether the lowercase word is on the stop list.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

func (t *Tokenizer) stem(word string) string {
	if t.stemmer == nil {
		return word
	}
	return t.stemmer.Stem(word)
}

// splitWords lowercases text and splits it on every non-letter.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
