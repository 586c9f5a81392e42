package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"docsearch/internal/domain"
	"docsearch/internal/port"
)

// Stats summarizes idx and the corpus counters saved with it.
func Stats(idx port.Index, corpus domain.Corpus) domain.Stats {
	return domain.Stats{
		Backend:  idx.DataType(),
		Terms:    idx.Len(),
		Files:    corpus.Files,
		Pages:    corpus.Pages,
		Words:    corpus.Words,
		Frequent: idx.FrequentTerms(),
	}
}

// Convert loads the persisted index into target, whatever backend wrote it,
// and saves it back in target's format.
func Convert(target port.Index) (domain.Corpus, error) {
	corpus, err := target.Load()
	if err != nil {
		return domain.Corpus{}, err
	}
	if err := target.Save(corpus); err != nil {
		return domain.Corpus{}, err
	}
	return corpus, nil
}

// Clear empties idx and the manifest and removes the given files. Missing
// files are not an error.
func Clear(idx port.Index, manifest port.Manifest, files ...string) error {
	idx.Clear()
	if err := manifest.Clear(); err != nil {
		return fmt.Errorf("failed to clear manifest: %w", err)
	}
	for _, path := range files {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}
