package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"docsearch/config"
	"docsearch/internal/adapter/analyzer"
	"docsearch/internal/adapter/fs"
	"docsearch/internal/adapter/index"
	"docsearch/internal/adapter/store"
	"docsearch/internal/domain"
	"docsearch/internal/port"
	"docsearch/internal/usecase"
)

func indexPaths(dir string) index.Paths {
	return index.Paths{
		Index:     config.IndexFilePath(dir),
		WordCount: config.WordCountPath(dir),
	}
}

func newIndex(dir string) (port.Index, error) {
	return index.New(GetConfig().Index.Backend, indexPaths(dir))
}

func newTokenizer() *analyzer.Tokenizer {
	c := GetConfig()
	return analyzer.NewTokenizer(c.Index.Stemming, c.Index.MinTermLength)
}

// loadIndex opens the index persisted under dir in the configured backend.
func loadIndex(dir string) (port.Index, domain.Corpus, error) {
	if _, err := os.Stat(config.IndexFilePath(dir)); errors.Is(err, os.ErrNotExist) {
		return nil, domain.Corpus{}, fmt.Errorf("no index found in %s. Run 'docsearch index' first", dir)
	}

	idx, err := newIndex(dir)
	if err != nil {
		return nil, domain.Corpus{}, err
	}

	start := time.Now()
	corpus, err := idx.Load()
	if err != nil {
		return nil, domain.Corpus{}, fmt.Errorf("failed to load index: %w", err)
	}
	mtr.ObserveOp("load", idx.DataType(), start)
	mtr.TermsIndexed.WithLabelValues(idx.DataType()).Set(float64(idx.Len()))
	return idx, corpus, nil
}

func openManifest(dir string) (*store.BoltStore, error) {
	if err := config.EnsureStateDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", config.StateDirName, err)
	}
	st, err := store.NewBoltStore(config.ManifestPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	return st, nil
}

func newIngest(idx port.Index, manifest port.Manifest) *usecase.IngestUseCase {
	c := GetConfig()
	return usecase.NewIngestUseCase(
		idx,
		manifest,
		fs.NewWalker(c.Index.Includes, c.Index.Excludes),
		fs.Reader{},
		newTokenizer(),
		c.Index.Workers,
		mtr,
	)
}

func printIngestResult(result *usecase.IngestResult, corpus domain.Corpus) {
	fmt.Printf("  Files indexed:  %d\n", result.FilesIndexed)
	fmt.Printf("  Files skipped:  %d (already indexed)\n", result.FilesSkipped)
	fmt.Printf("  Pages:          %d\n", result.Pages)
	fmt.Printf("  Words:          %d\n", result.Words)
	fmt.Printf("\nCorpus: %d files, %d pages, %d words\n", corpus.Files, corpus.Pages, corpus.Words)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}
