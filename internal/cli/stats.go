package cli

import (
	"encoding/json"
	"fmt"

	"docsearch/internal/usecase"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus totals and the most frequent terms",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

type statsTerm struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
	Documents int    `json:"documents"`
}

func runStats(cmd *cobra.Command, args []string) error {
	idx, corpus, err := loadIndex(GetRootDir())
	if err != nil {
		return err
	}

	stats := usecase.Stats(idx, corpus)
	out := cmd.OutOrStdout()

	if statsJSON {
		terms := make([]statsTerm, 0, len(stats.Frequent))
		for _, w := range stats.Frequent {
			terms = append(terms, statsTerm{Term: w.Term, Frequency: w.TotalFrequency, Documents: w.DocumentCount})
		}
		output, err := json.MarshalIndent(map[string]any{
			"backend":  stats.Backend,
			"terms":    stats.Terms,
			"files":    stats.Files,
			"pages":    stats.Pages,
			"words":    stats.Words,
			"frequent": terms,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	fmt.Fprintf(out, "Backend:  %s\n", stats.Backend)
	fmt.Fprintf(out, "Terms:    %d\n", stats.Terms)
	fmt.Fprintf(out, "Files:    %d\n", stats.Files)
	fmt.Fprintf(out, "Pages:    %d\n", stats.Pages)
	fmt.Fprintf(out, "Words:    %d\n", stats.Words)

	if len(stats.Frequent) == 0 {
		return nil
	}
	fmt.Fprintf(out, "\nMost frequent terms:\n")
	for i, w := range stats.Frequent {
		fmt.Fprintf(out, "  %2d. %-20s %8d times in %d documents\n", i+1, w.Term, w.TotalFrequency, w.DocumentCount)
	}
	return nil
}
