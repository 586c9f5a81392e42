package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"docsearch/internal/adapter/cache"
	"docsearch/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	queryText string
	queryShow int
	queryJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search the index with a boolean query",
	Long: `Search the index with a prefix boolean query. The operator keywords
AND, OR and NOT apply to every following word until the next operator;
the default operator is OR. Without -q an interactive prompt reads one
query per line until "exit" or end of input.

Examples:
  docsearch query -q "whale ship"           # documents with either word
  docsearch query -q "AND whale ship"       # documents with both
  docsearch query -q "whale NOT ship" --json
  docsearch query                           # interactive`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "search query (interactive when empty)")
	queryCmd.Flags().IntVarP(&queryShow, "show", "n", 0, "number of documents to print (default from config)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
}

// queryOutput is the JSON form of a query result.
type queryOutput struct {
	Query         string            `json:"query"`
	Label         string            `json:"label"`
	DocumentCount int               `json:"document_count"`
	Documents     []queryOutputDoc  `json:"documents"`
	Skipped       []queryOutputSkip `json:"skipped,omitempty"`
	Cached        bool              `json:"cached"`
}

type queryOutputDoc struct {
	Name      string  `json:"name"`
	Frequency int     `json:"frequency"`
	Ranking   float64 `json:"ranking"`
}

type queryOutputSkip struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	idx, corpus, err := loadIndex(GetRootDir())
	if err != nil {
		return err
	}

	processor := usecase.NewQueryProcessor(newTokenizer())
	search := usecase.NewSearchUseCase(processor, idx, corpus, cache.NewQueryCache(cfg.Query.CacheSize, 0), mtr)

	show := cfg.Query.ShowDocuments
	if queryShow > 0 {
		show = queryShow
	}

	out := cmd.OutOrStdout()
	if queryText != "" {
		return printResult(out, queryText, search, show)
	}

	fmt.Fprintf(out, "Loaded %s index of %d files (%d terms). Type \"exit\" to quit.\n", idx.DataType(), corpus.Files, idx.Len())
	return interactive(os.Stdin, out, search, show)
}

func interactive(in io.Reader, out io.Writer, search *usecase.SearchUseCase, show int) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "query> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := printResult(out, line, search, show); err != nil {
			return err
		}
	}
}

func printResult(out io.Writer, query string, search *usecase.SearchUseCase, show int) error {
	result, cached := search.Search(query)
	w := result.Word

	if queryJSON {
		o := queryOutput{
			Query:         query,
			Label:         w.Term,
			DocumentCount: w.DocumentCount,
			Documents:     []queryOutputDoc{},
			Cached:        cached,
		}
		for i, d := range w.Documents {
			if i >= show {
				break
			}
			o.Documents = append(o.Documents, queryOutputDoc{Name: d.Name, Frequency: d.Frequency, Ranking: d.Ranking})
		}
		for _, s := range result.Skipped {
			o.Skipped = append(o.Skipped, queryOutputSkip{Word: s.Word, Reason: s.Reason})
		}
		output, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	for _, s := range result.Skipped {
		fmt.Fprintf(out, "skipped %q: %s\n", s.Word, s.Reason)
	}

	if w.Empty() || len(w.Documents) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	fmt.Fprintf(out, "%s :: %d documents\n", w.Term, w.DocumentCount)
	for i, d := range w.Documents {
		if i >= show {
			break
		}
		fmt.Fprintf(out, "  [%d] %s (frequency: %d, ranking: %.2f)\n", i+1, d.Name, d.Frequency, d.Ranking)
	}
	fmt.Fprintln(out)
	return nil
}
