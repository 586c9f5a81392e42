package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"docsearch/config"
	"docsearch/internal/usecase"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Build the index for a document directory",
	Long: `Build the index from scratch over every matching document in the
specified directory. Any existing index is discarded.
The index is stored in .docsearch/ within the target directory.

Examples:
  docsearch index .                 # Index current directory
  docsearch index ./books -b hash   # Index using the hash table backend`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		rootDir = path
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	st, err := openManifest(path)
	if err != nil {
		return err
	}
	defer st.Close()

	migrationResult, err := st.CheckMigration(cfg)
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}
	if migrationResult.NeedsRebuild {
		fmt.Printf("Index rebuild required: %s\n", migrationResult.Reason)
	}

	idx, err := newIndex(path)
	if err != nil {
		return err
	}

	fmt.Printf("Scanning %s...\n", path)

	corpus, result, err := newIngest(idx, st).Build(cmd.Context(), path, newProgress("Indexing"))
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	if err := st.Migrate(cfg); err != nil {
		return fmt.Errorf("failed to update schema info: %w", err)
	}

	fmt.Printf("\nIndexing complete (%s):\n", idx.DataType())
	printIngestResult(result, corpus)
	fmt.Printf("\nIndex stored at: %s\n", config.IndexFilePath(path))
	return nil
}

// newProgress returns a progress callback that draws a bar once the total is
// known.
func newProgress(label string) usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	return func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]"+label+"[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]%s[reset] ETA: %s", label, formatDuration(eta)))
			}
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
