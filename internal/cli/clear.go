package cli

import (
	"fmt"

	"docsearch/config"
	"docsearch/internal/usecase"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the index, word-count file and manifest records",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	dir := GetRootDir()

	idx, err := newIndex(dir)
	if err != nil {
		return err
	}

	st, err := openManifest(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := usecase.Clear(idx, st, config.IndexFilePath(dir), config.WordCountPath(dir)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Index cleared in %s\n", config.StateDir(dir))
	return nil
}
