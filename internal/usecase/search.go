package usecase

import (
	"strings"
	"time"

	"docsearch/internal/adapter/cache"
	"docsearch/internal/domain"
	"docsearch/internal/metrics"
	"docsearch/internal/port"
)

// SearchUseCase answers queries against a loaded index, caching results
// until the index changes.
type SearchUseCase struct {
	processor *QueryProcessor
	index     port.Index
	corpus    domain.Corpus
	cache     *cache.QueryCache
	metrics   *metrics.Metrics
}

// NewSearchUseCase creates a search use case. qc and m may be nil.
func NewSearchUseCase(processor *QueryProcessor, index port.Index, corpus domain.Corpus, qc *cache.QueryCache, m *metrics.Metrics) *SearchUseCase {
	return &SearchUseCase{
		processor: processor,
		index:     index,
		corpus:    corpus,
		cache:     qc,
		metrics:   m,
	}
}

// Search evaluates query. cached reports whether the postings came from the
// cache.
func (u *SearchUseCase) Search(query string) (result QueryResult, cached bool) {
	start := time.Now()
	key := strings.Join(strings.Fields(query), " ")

	if u.cache != nil {
		if w, ok := u.cache.Get(key); ok {
			result = QueryResult{Word: w, Skipped: u.skipped(query)}
			u.record(result, "hit", start)
			return result, true
		}
	}

	result = u.processor.Run(query, u.index, u.corpus)
	if u.cache != nil {
		u.cache.Put(key, result.Word)
	}
	u.record(result, "miss", start)
	return result, false
}

// Reset points the use case at a new corpus after the index was reloaded
// or extended and drops every cached result.
func (u *SearchUseCase) Reset(corpus domain.Corpus) {
	u.corpus = corpus
	if u.cache != nil {
		u.cache.Invalidate()
	}
}

// skipped re-derives the dropped words of a cached query.
func (u *SearchUseCase) skipped(query string) []SkippedWord {
	var out []SkippedWord
	for _, token := range strings.Fields(query) {
		switch token {
		case OpAnd, OpOr, OpNot:
			continue
		}
		if _, ok, reason := u.processor.normalizer.Normalize(token); !ok {
			out = append(out, SkippedWord{Word: token, Reason: reason})
		}
	}
	return out
}

func (u *SearchUseCase) record(result QueryResult, cacheStatus string, start time.Time) {
	if u.metrics == nil {
		return
	}
	u.metrics.QueryLatency.WithLabelValues(cacheStatus).Observe(time.Since(start).Seconds())
	if cacheStatus == "hit" {
		u.metrics.CacheHitsTotal.Inc()
	} else if u.cache != nil {
		u.metrics.CacheMissesTotal.Inc()
	}
	resultType := "match"
	if len(result.Word.Documents) == 0 {
		resultType = "no_match"
	}
	u.metrics.QueriesTotal.WithLabelValues(resultType).Inc()
}
