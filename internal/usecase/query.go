package usecase

import (
	"errors"
	"log/slog"
	"strings"

	"docsearch/internal/domain"
	"docsearch/internal/logger"
	"docsearch/internal/port"
)

// Operator keywords. Matching is case sensitive so that a lowercase "and"
// is treated as an ordinary word.
const (
	OpAnd = "AND"
	OpOr  = "OR"
	OpNot = "NOT"
)

// SkippedWord is a query word dropped before lookup.
type SkippedWord struct {
	Word   string
	Reason string
}

// QueryResult is the outcome of one boolean query.
type QueryResult struct {
	Word    *domain.Word
	Skipped []SkippedWord
}

// QueryProcessor evaluates prefix boolean queries left to right against an
// index.
type QueryProcessor struct {
	normalizer port.Normalizer
	log        *slog.Logger
}

func NewQueryProcessor(normalizer port.Normalizer) *QueryProcessor {
	return &QueryProcessor{
		normalizer: normalizer,
		log:        logger.WithComponent("query"),
	}
}

// Process returns the combined postings for query. The result is never nil;
// an empty Word means nothing matched.
func (p *QueryProcessor) Process(query string, idx port.Index, corpus domain.Corpus) *domain.Word {
	return p.Run(query, idx, corpus).Word
}

// Run is Process that also reports the words it dropped.
func (p *QueryProcessor) Run(query string, idx port.Index, corpus domain.Corpus) QueryResult {
	result := QueryResult{Word: domain.NewWord("")}
	operator := OpOr

	for _, token := range strings.Fields(query) {
		switch token {
		case OpAnd, OpOr, OpNot:
			operator = token
			continue
		}

		term, ok, reason := p.normalizer.Normalize(token)
		if !ok {
			p.log.Debug("query word skipped", "word", token, "reason", reason)
			result.Skipped = append(result.Skipped, SkippedWord{Word: token, Reason: reason})
			continue
		}

		found, err := idx.Get(term)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				p.log.Warn("lookup failed", "term", term, "error", err)
			}
			continue
		}

		acc := result.Word
		switch {
		case operator == OpNot:
			if !acc.Empty() {
				acc.Difference(found, corpus)
			}
		case acc.Empty():
			result.Word = found.Clone()
		case operator == OpAnd:
			acc.Intersect(found, corpus)
		default:
			acc.Combine(found, corpus)
		}
	}

	return result
}
