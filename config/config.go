package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StateDirName is the per-corpus directory holding the index files.
const StateDirName = ".docsearch"

// Config holds all configuration for docsearch.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// IndexConfig holds indexing configuration.
type IndexConfig struct {
	Backend       string   `yaml:"backend"` // "avl" or "hash"
	Includes      []string `yaml:"includes"`
	Excludes      []string `yaml:"excludes"`
	Stemming      bool     `yaml:"stemming"`
	MinTermLength int      `yaml:"min_term_length"`
	Workers       int      `yaml:"workers"`
}

// QueryConfig holds query configuration.
type QueryConfig struct {
	CacheSize     int `yaml:"cache_size"`
	ShowDocuments int `yaml:"show_documents"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // Prometheus textfile path, empty disables export
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Backend:       "avl",
			Includes:      []string{"**/*.txt", "**/*.md", "**/*.text"},
			Excludes:      []string{"**/.git/**", "**/" + StateDirName + "/**", "**/node_modules/**", "**/vendor/**"},
			Stemming:      true,
			MinTermLength: 3,
			Workers:       4,
		},
		Query: QueryConfig{
			CacheSize:     100,
			ShowDocuments: 15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docsearch.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docsearch.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, StateDirName, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate rejects settings the index cannot work with.
func (c *Config) Validate() error {
	switch c.Index.Backend {
	case "avl", "hash":
	default:
		return fmt.Errorf("index.backend must be avl or hash, got %q", c.Index.Backend)
	}
	if c.Index.MinTermLength < 1 {
		return fmt.Errorf("index.min_term_length must be positive, got %d", c.Index.MinTermLength)
	}
	if c.Index.Workers < 1 {
		c.Index.Workers = 1
	}
	if c.Query.ShowDocuments < 1 {
		c.Query.ShowDocuments = 15
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StateDir returns the state directory of the corpus rooted at dir.
func StateDir(dir string) string {
	return filepath.Join(dir, StateDirName)
}

// IndexFilePath returns the path to the persisted index.
func IndexFilePath(dir string) string {
	return filepath.Join(dir, StateDirName, "index.txt")
}

// WordCountPath returns the path to the per-document word count file.
func WordCountPath(dir string) string {
	return filepath.Join(dir, StateDirName, "wordcount.txt")
}

// ManifestPath returns the path to the document manifest database.
func ManifestPath(dir string) string {
	return filepath.Join(dir, StateDirName, "manifest.db")
}

// EnsureStateDir ensures the state directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(StateDir(dir), 0755)
}
