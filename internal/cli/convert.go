package cli

import (
	"fmt"

	"docsearch/internal/adapter/index"
	"docsearch/internal/usecase"
	"github.com/spf13/cobra"
)

var convertBackend string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rewrite the index file for another backend",
	Long: `Load the saved index into the requested backend and save it back in
that backend's format. Either backend can load a file in the other's
format, so later commands work whatever index.backend is configured.

Examples:
  docsearch convert --to hash
  docsearch convert --to avl`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertBackend, "to", "", "target backend: avl or hash")
	convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	dir := GetRootDir()

	target, err := index.New(convertBackend, indexPaths(dir))
	if err != nil {
		return err
	}

	corpus, err := usecase.Convert(target)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d terms over %d files to %s\n", target.Len(), corpus.Files, target.DataType())
	return nil
}
