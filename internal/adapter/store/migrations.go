package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"docsearch/config"
	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var (
	keySchemaVersion = []byte("schema_version")
	keyConfigHash    = []byte("config_hash")
)

// SchemaInfo stores schema version and configuration hash.
type SchemaInfo struct {
	Version    int    `json:"version"`
	ConfigHash string `json:"config_hash"`
}

// GetSchemaInfo retrieves the current schema info from the database.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		if data := b.Get(keySchemaVersion); data != nil {
			if err := json.Unmarshal(data, &info.Version); err != nil {
				return fmt.Errorf("schema version: %w", err)
			}
		}
		if data := b.Get(keyConfigHash); data != nil {
			info.ConfigHash = string(data)
		}
		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		versionData, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, versionData); err != nil {
			return err
		}

		return b.Put(keyConfigHash, []byte(info.ConfigHash))
	})
}

// ComputeConfigHash hashes the settings that decide which terms a document
// produces. A different hash means the index must be rebuilt.
func ComputeConfigHash(cfg *config.Config) string {
	relevant := struct {
		Stemming      bool `json:"stemming"`
		MinTermLength int  `json:"min_term_length"`
	}{
		Stemming:      cfg.Index.Stemming,
		MinTermLength: cfg.Index.MinTermLength,
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// MigrationResult describes the result of a migration check.
type MigrationResult struct {
	NeedsMigration bool
	NeedsRebuild   bool
	OldVersion     int
	NewVersion     int
	Reason         string
}

// CheckMigration checks if migration or rebuild is needed.
func (s *BoltStore) CheckMigration(cfg *config.Config) (*MigrationResult, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	result := &MigrationResult{
		OldVersion: info.Version,
		NewVersion: CurrentSchemaVersion,
	}

	switch {
	case info.Version == 0:
		result.NeedsMigration = true
		result.Reason = "initializing schema version"
	case info.Version < CurrentSchemaVersion:
		result.NeedsMigration = true
		result.Reason = fmt.Sprintf("schema upgrade from v%d to v%d", info.Version, CurrentSchemaVersion)
	case info.Version > CurrentSchemaVersion:
		result.NeedsRebuild = true
		result.Reason = fmt.Sprintf("manifest created by newer version (v%d > v%d)", info.Version, CurrentSchemaVersion)
		return result, nil
	}

	if info.ConfigHash != "" && info.ConfigHash != ComputeConfigHash(cfg) {
		result.NeedsRebuild = true
		result.Reason = "index configuration changed"
	}

	return result, nil
}

// Migrate brings the schema to CurrentSchemaVersion and records the
// configuration hash.
func (s *BoltStore) Migrate(cfg *config.Config) error {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return err
	}
	if info.Version > CurrentSchemaVersion {
		return fmt.Errorf("manifest schema v%d is newer than supported v%d", info.Version, CurrentSchemaVersion)
	}

	return s.SetSchemaInfo(&SchemaInfo{
		Version:    CurrentSchemaVersion,
		ConfigHash: ComputeConfigHash(cfg),
	})
}

// Clear removes every document record but keeps the schema info.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketDocs); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(bucketDocs)
		return err
	})
}

// NeedsRebuild checks if the index needs a full rebuild due to config changes.
func (s *BoltStore) NeedsRebuild(cfg *config.Config) (bool, string, error) {
	result, err := s.CheckMigration(cfg)
	if err != nil {
		return false, "", err
	}
	return result.NeedsRebuild, result.Reason, nil
}
