package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docsearch/config"
	"docsearch/internal/adapter/analyzer"
	"docsearch/internal/adapter/fs"
	"docsearch/internal/adapter/index"
	"docsearch/internal/adapter/memstore"
	"docsearch/internal/domain"
	"docsearch/internal/port"
	"docsearch/internal/usecase"
)

type timings struct {
	build, save, load, query time.Duration
	terms, matches           int
}

func main() {
	dir := flag.String("dir", ".", "Directory of documents to index")
	query := flag.String("q", "", "Query to time against each backend")
	rounds := flag.Int("n", 100, "Number of times the query is repeated")
	flag.Parse()

	if *query == "" {
		fmt.Println("Usage: go run cmd/benchmark/main.go -dir ./books -q \"AND whale ship\"")
		fmt.Println("\nBuilds the index with both backends and reports:")
		fmt.Println("  1. Build time (read, tokenize, insert, rank)")
		fmt.Println("  2. Save and load time of the index file")
		fmt.Println("  3. Mean query time")
		os.Exit(1)
	}

	root, err := filepath.Abs(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tmp, err := os.MkdirTemp("", "docsearch-bench-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating work dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmp)

	fmt.Println("INDEX BACKEND BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Corpus: %s\n", root)
	fmt.Printf("Query:  \"%s\" x %d\n\n", *query, *rounds)

	fmt.Printf("%-12s %10s %10s %10s %12s %8s %8s\n", "backend", "build", "save", "load", "query(avg)", "terms", "matches")
	fmt.Println(strings.Repeat("-", 70))

	for _, backend := range []string{"avl", "hash"} {
		paths := index.Paths{
			Index:     filepath.Join(tmp, backend+".txt"),
			WordCount: filepath.Join(tmp, backend+"-wordcount.txt"),
		}
		t, err := run(cfg, backend, paths, root, *query, *rounds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", backend, err)
			os.Exit(1)
		}
		fmt.Printf("%-12s %10s %10s %10s %12s %8d %8d\n",
			backend, round(t.build), round(t.save), round(t.load), round(t.query), t.terms, t.matches)
	}
}

func run(cfg *config.Config, backend string, paths index.Paths, root, query string, rounds int) (timings, error) {
	var t timings

	idx, err := index.New(backend, paths)
	if err != nil {
		return t, err
	}
	tokenizer := analyzer.NewTokenizer(cfg.Index.Stemming, cfg.Index.MinTermLength)

	// Build saves as its last step; the separate save below is timed alone.
	ingest := usecase.NewIngestUseCase(idx, memstore.NewMemoryStore(),
		fs.NewWalker(cfg.Index.Includes, cfg.Index.Excludes), fs.Reader{},
		tokenizer, cfg.Index.Workers, nil)

	start := time.Now()
	corpus, _, err := ingest.Build(context.Background(), root, nil)
	if err != nil {
		return t, err
	}
	t.build = time.Since(start)

	start = time.Now()
	if err := idx.Save(corpus); err != nil {
		return t, err
	}
	t.save = time.Since(start)

	loaded, err := index.New(backend, paths)
	if err != nil {
		return t, err
	}
	start = time.Now()
	corpus, err = loaded.Load()
	if err != nil {
		return t, err
	}
	t.load = time.Since(start)
	t.terms = loaded.Len()

	t.matches, t.query = timeQuery(usecase.NewQueryProcessor(tokenizer), loaded, corpus, query, rounds)
	return t, nil
}

func timeQuery(p *usecase.QueryProcessor, idx port.Index, corpus domain.Corpus, query string, rounds int) (int, time.Duration) {
	rounds = max(rounds, 1)
	matches := 0
	start := time.Now()
	for i := 0; i < rounds; i++ {
		matches = len(p.Process(query, idx, corpus).Documents)
	}
	return matches, time.Since(start) / time.Duration(rounds)
}

func round(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(10 * time.Microsecond).String()
	}
}
