//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"
	"time"

	"docsearch/internal/adapter/analyzer"
	"docsearch/internal/adapter/cache"
	"docsearch/internal/adapter/index"
	"docsearch/internal/adapter/memstore"
	"docsearch/internal/domain"
	"docsearch/internal/port"
	"docsearch/internal/usecase"
)

var (
	idx       port.Index
	manifest  *memstore.MemoryStore
	corpus    domain.Corpus
	tokenizer *analyzer.Tokenizer
	search    *usecase.SearchUseCase
)

func init() {
	tokenizer = analyzer.NewTokenizer(true, analyzer.DefaultMinLength)
	reset()
}

// reset starts an empty in-memory index. Nothing is ever saved from the
// browser, so the index paths stay empty.
func reset() {
	idx = index.NewTreeIndex(index.Paths{})
	manifest = memstore.NewMemoryStore()
	corpus = domain.NewCorpus("browser")
	search = usecase.NewSearchUseCase(usecase.NewQueryProcessor(tokenizer), idx, corpus, cache.NewQueryCache(100, 0), nil)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("docsearchIndex", js.FuncOf(indexContent))
	js.Global().Set("docsearchQuery", js.FuncOf(queryContent))
	js.Global().Set("docsearchClear", js.FuncOf(clearIndex))
	js.Global().Set("docsearchStats", js.FuncOf(getStats))

	<-c
}

func indexContent(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: docsearchIndex(filename, content)")
	}

	filename := args[0].String()
	content := args[1].String()

	if _, err := manifest.GetDoc(filename); err == nil {
		return makeResult(map[string]interface{}{
			"success":  false,
			"skipped":  true,
			"filename": filename,
		})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return makeError("manifest lookup failed: " + err.Error())
	}

	terms := tokenizer.Tokenize(content)
	for _, term := range terms {
		idx.InsertDocument(term, filename)
	}

	pages := usecase.CountPages(content)
	corpus.Files++
	corpus.Pages += pages
	corpus.Words += len(terms)
	corpus.WordsPerDocument[filename] += len(terms)
	idx.RecalculateRanking(corpus)
	search.Reset(corpus)

	err := manifest.PutDoc(domain.Document{
		Path:    filename,
		ModTime: time.Now(),
		Pages:   pages,
		Tokens:  len(terms),
	})
	if err != nil {
		return makeError("manifest update failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"success":  true,
		"words":    len(terms),
		"pages":    pages,
		"filename": filename,
	})
}

func queryContent(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: docsearchQuery(query, [limit])")
	}

	query := args[0].String()
	limit := domain.MaxDocuments
	if len(args) > 1 {
		limit = args[1].Int()
	}

	result, cached := search.Search(query)

	output := make([]map[string]interface{}, 0, len(result.Word.Documents))
	for i, d := range result.Word.Documents {
		if i >= limit {
			break
		}
		output = append(output, map[string]interface{}{
			"name":      d.Name,
			"frequency": d.Frequency,
			"ranking":   d.Ranking,
		})
	}

	skipped := make([]map[string]interface{}, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, map[string]interface{}{
			"word":   s.Word,
			"reason": s.Reason,
		})
	}

	return makeResult(map[string]interface{}{
		"query":         query,
		"label":         result.Word.Term,
		"documentCount": result.Word.DocumentCount,
		"results":       output,
		"skipped":       skipped,
		"cached":        cached,
	})
}

func clearIndex(this js.Value, args []js.Value) interface{} {
	reset()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func getStats(this js.Value, args []js.Value) interface{} {
	stats := usecase.Stats(idx, corpus)
	docs, _ := manifest.ListDocs()

	filenames := make([]string, len(docs))
	for i, doc := range docs {
		filenames[i] = doc.Path
	}

	frequent := make([]map[string]interface{}, len(stats.Frequent))
	for i, w := range stats.Frequent {
		frequent[i] = map[string]interface{}{
			"term":      w.Term,
			"frequency": w.TotalFrequency,
		}
	}

	return makeResult(map[string]interface{}{
		"backend":  stats.Backend,
		"terms":    stats.Terms,
		"files":    stats.Files,
		"pages":    stats.Pages,
		"words":    stats.Words,
		"frequent": frequent,
		"names":    filenames,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
