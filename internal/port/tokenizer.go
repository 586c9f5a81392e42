package port

type Tokenizer interface {
	Tokenize(text string) []string

	CountTokens(text string) int
}

// Normalizer turns a raw query or document word into an index term.
type Normalizer interface {
	// Normalize returns the term, or ok=false with the reason it was dropped.
	Normalize(word string) (term string, ok bool, reason string)
}
