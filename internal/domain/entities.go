package domain

import "time"

// MaxDocuments is the number of ranked documents a Word retains.
const MaxDocuments = 15

// DocRecord is one document in which a term occurs.
type DocRecord struct {
	Name      string
	Frequency int
	Ranking   float64
}

// Corpus holds the corpus-wide counters used as the tf-idf context.
type Corpus struct {
	Directory        string
	Files            int
	Pages            int
	Words            int
	WordsPerDocument map[string]int
}

// NewCorpus returns an empty corpus rooted at dir.
func NewCorpus(dir string) Corpus {
	return Corpus{
		Directory:        dir,
		WordsPerDocument: make(map[string]int),
	}
}

// Document is a manifest entry for an ingested file.
type Document struct {
	Path    string
	ModTime time.Time
	Pages   int
	Tokens  int
}

// Stats summarizes an index for reporting.
type Stats struct {
	Backend  string
	Terms    int
	Files    int
	Pages    int
	Words    int
	Frequent []*Word
}
