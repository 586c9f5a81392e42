package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a document or directory to an existing index",
	Long: `Add one extra document, or every matching document under a directory,
to the index of the corpus directory. Corpus counters accumulate and
rankings are recalculated once for the batch. Documents already in the
index are skipped.

Examples:
  docsearch add ./extra/notes.txt
  docsearch add ./more-books -d ./books`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	dir := GetRootDir()
	cfg := GetConfig()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	st, err := openManifest(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	rebuild, reason, err := st.NeedsRebuild(cfg)
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}
	if rebuild {
		return fmt.Errorf("index rebuild required (%s). Run 'docsearch index' first", reason)
	}

	idx, corpus, err := loadIndex(dir)
	if err != nil {
		return err
	}

	ingest := newIngest(idx, st)
	if info.IsDir() {
		fmt.Printf("Scanning %s...\n", path)
		result, err := ingest.AddDirectory(cmd.Context(), &corpus, path, newProgress("Adding"))
		if err != nil {
			return fmt.Errorf("adding directory failed: %w", err)
		}
		fmt.Printf("\nDirectory added:\n")
		printIngestResult(result, corpus)
		return nil
	}

	result, err := ingest.AddDocument(cmd.Context(), &corpus, path)
	if err != nil {
		return fmt.Errorf("adding document failed: %w", err)
	}
	fmt.Printf("Document added:\n")
	printIngestResult(result, corpus)
	return nil
}
