package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"docsearch/internal/domain"
	"docsearch/internal/logger"
	"docsearch/internal/metrics"
	"docsearch/internal/port"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc is called after each document is merged into the index.
type ProgressFunc func(processed, total int, currentFile string)

// IngestUseCase reads documents into an index and persists it.
type IngestUseCase struct {
	index     port.Index
	manifest  port.Manifest
	walker    port.FileWalker
	reader    port.FileReader
	tokenizer port.Tokenizer
	workers   int
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewIngestUseCase creates a new ingest use case. m may be nil.
func NewIngestUseCase(
	index port.Index,
	manifest port.Manifest,
	walker port.FileWalker,
	reader port.FileReader,
	tokenizer port.Tokenizer,
	workers int,
	m *metrics.Metrics,
) *IngestUseCase {
	if workers < 1 {
		workers = 1
	}
	return &IngestUseCase{
		index:     index,
		manifest:  manifest,
		walker:    walker,
		reader:    reader,
		tokenizer: tokenizer,
		workers:   workers,
		metrics:   m,
		log:       logger.WithComponent("ingest"),
	}
}

// IngestResult contains the results of an ingest operation.
type IngestResult struct {
	FilesIndexed int
	FilesSkipped int
	Pages        int
	Words        int
	Errors       []string
}

// parsedDoc is the output of reading and tokenizing one file.
type parsedDoc struct {
	file  port.FileInfo
	terms []string
	pages int
	err   error
}

// Build discards the current index and manifest and indexes every matching
// document under root.
func (u *IngestUseCase) Build(ctx context.Context, root string, progress ProgressFunc) (domain.Corpus, *IngestResult, error) {
	start := time.Now()

	u.index.Clear()
	if err := u.manifest.Clear(); err != nil {
		return domain.Corpus{}, nil, fmt.Errorf("failed to clear manifest: %w", err)
	}

	corpus := domain.NewCorpus(root)
	result, err := u.addPath(ctx, &corpus, root, progress)
	if err != nil {
		return domain.Corpus{}, nil, err
	}

	u.observe("build", start)
	return corpus, result, nil
}

// AddDirectory indexes the documents under dir into the existing corpus.
func (u *IngestUseCase) AddDirectory(ctx context.Context, corpus *domain.Corpus, dir string, progress ProgressFunc) (*IngestResult, error) {
	start := time.Now()
	result, err := u.addPath(ctx, corpus, dir, progress)
	if err != nil {
		return nil, err
	}
	u.observe("add_directory", start)
	return result, nil
}

// AddDocument indexes a single extra document into the existing corpus.
func (u *IngestUseCase) AddDocument(ctx context.Context, corpus *domain.Corpus, path string) (*IngestResult, error) {
	start := time.Now()
	result, err := u.addPath(ctx, corpus, path, nil)
	if err != nil {
		return nil, err
	}
	u.observe("add_document", start)
	return result, nil
}

func (u *IngestUseCase) addPath(ctx context.Context, corpus *domain.Corpus, path string, progress ProgressFunc) (*IngestResult, error) {
	files, err := u.walker.Walk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	result := &IngestResult{}
	files = u.skipIngested(files, result)

	docs, err := u.parse(ctx, files)
	if err != nil {
		return nil, err
	}

	indexed := u.merge(corpus, docs, result, progress)
	if len(indexed) == 0 {
		u.log.Info("no new documents", "path", path, "skipped", result.FilesSkipped)
		return result, nil
	}

	u.index.RecalculateRanking(*corpus)

	saveStart := time.Now()
	if err := u.index.Save(*corpus); err != nil {
		return nil, err
	}
	u.observe("save", saveStart)

	if err := u.manifest.PutDocs(indexed); err != nil {
		return nil, fmt.Errorf("failed to update manifest: %w", err)
	}

	if u.metrics != nil {
		u.metrics.DocsIngestedTotal.WithLabelValues(u.index.DataType()).Add(float64(len(indexed)))
		u.metrics.TermsIndexed.WithLabelValues(u.index.DataType()).Set(float64(u.index.Len()))
		u.metrics.CorpusWords.Set(float64(corpus.Words))
	}

	u.log.Info("documents indexed",
		"path", path,
		"files", result.FilesIndexed,
		"skipped", result.FilesSkipped,
		"words", result.Words,
		"terms", u.index.Len(),
	)
	return result, nil
}

// skipIngested drops files the manifest already lists. A document cannot be
// removed from the index, so a changed file is only reported.
func (u *IngestUseCase) skipIngested(files []port.FileInfo, result *IngestResult) []port.FileInfo {
	kept := files[:0:0]
	for _, file := range files {
		existing, err := u.manifest.GetDoc(file.Path)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				result.Errors = append(result.Errors, fmt.Sprintf("manifest lookup for %s: %v", file.Path, err))
			}
			kept = append(kept, file)
			continue
		}

		result.FilesSkipped++
		if u.metrics != nil {
			u.metrics.DocsSkippedTotal.Inc()
		}
		if file.ModTime > existing.ModTime.Unix() {
			u.log.Warn("document changed since it was indexed, rebuild to refresh it", "path", file.Path)
		}
	}
	return kept
}

// parse reads and tokenizes files concurrently. Results keep the order of
// files so merging is deterministic.
func (u *IngestUseCase) parse(ctx context.Context, files []port.FileInfo) ([]parsedDoc, error) {
	docs := make([]parsedDoc, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs[i] = u.parseFile(file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ingest cancelled: %w", err)
	}
	return docs, nil
}

func (u *IngestUseCase) parseFile(file port.FileInfo) parsedDoc {
	text, err := u.reader.ReadFile(file.Path)
	if err != nil {
		return parsedDoc{file: file, err: err}
	}
	return parsedDoc{
		file:  file,
		terms: u.tokenizer.Tokenize(text),
		pages: CountPages(text),
	}
}

// merge inserts parsed documents on the calling goroutine and updates the
// corpus counters.
func (u *IngestUseCase) merge(corpus *domain.Corpus, docs []parsedDoc, result *IngestResult, progress ProgressFunc) []domain.Document {
	indexed := make([]domain.Document, 0, len(docs))
	if corpus.WordsPerDocument == nil {
		corpus.WordsPerDocument = make(map[string]int)
	}

	for i, doc := range docs {
		if progress != nil {
			progress(i+1, len(docs), doc.file.Path)
		}
		if doc.err != nil {
			u.log.Warn("skipping unreadable document", "path", doc.file.Path, "error", doc.err)
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", doc.file.Path, doc.err))
			continue
		}

		for _, term := range doc.terms {
			u.index.InsertDocument(term, doc.file.Path)
		}

		corpus.Files++
		corpus.Pages += doc.pages
		corpus.Words += len(doc.terms)
		corpus.WordsPerDocument[doc.file.Path] += len(doc.terms)

		result.FilesIndexed++
		result.Pages += doc.pages
		result.Words += len(doc.terms)

		indexed = append(indexed, domain.Document{
			Path:    doc.file.Path,
			ModTime: time.Unix(doc.file.ModTime, 0),
			Pages:   doc.pages,
			Tokens:  len(doc.terms),
		})
	}
	return indexed
}

func (u *IngestUseCase) observe(operation string, start time.Time) {
	if u.metrics != nil {
		u.metrics.ObserveOp(operation, u.index.DataType(), start)
	}
}

// CountPages counts the form-feed separated sections of text that hold any
// non-space character. Every document has at least one page.
func CountPages(text string) int {
	pages := 0
	for _, section := range strings.Split(text, "\f") {
		if strings.TrimSpace(section) != "" {
			pages++
		}
	}
	return max(pages, 1)
}
