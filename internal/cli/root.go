package cli

import (
	"fmt"
	"log/slog"
	"os"

	"docsearch/config"
	"docsearch/internal/logger"
	"docsearch/internal/metrics"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	backend  string
	logLevel string
	mtr      *metrics.Metrics
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Boolean keyword search over a local document collection",
	Long: `docsearch builds a tf-idf ranked inverted index over a directory of
text documents and answers prefix boolean queries (AND, OR, NOT) against it.
The index is kept either in a single AVL tree or in a hash table of AVL
trees, and is stored as text in .docsearch/ within the corpus directory.

Example usage:
  docsearch index ./books              # Build the index
  docsearch query -q "AND whale ship"  # Search
  docsearch stats                      # Corpus totals and frequent terms`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if backend != "" {
			cfg.Index.Backend = backend
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
		mtr = metrics.New()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if err := mtr.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			slog.Warn("metrics export failed", "error", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docsearch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "corpus directory holding .docsearch (default is current directory)")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", "", "index backend: avl or hash (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
