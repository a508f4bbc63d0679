package datastore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/common"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
)

// MetadataStore serializes the run metadata to a single JSON file in the
// output directory, overwriting any previous run's file.
type MetadataStore struct {
	logger   zerolog.Logger
	filePath string
}

// NewMetadataStore creates a metadata store for the configured output
// directory and metadata filename.
func NewMetadataStore(cfg config.StorageConfig, logger zerolog.Logger) *MetadataStore {
	return &MetadataStore{
		logger:   logger.With().Str("component", "MetadataStore").Logger(),
		filePath: filepath.Join(cfg.OutputDir, cfg.MetadataFilename),
	}
}

// FilePath returns the path the metadata file is written to.
func (ms *MetadataStore) FilePath() string {
	return ms.filePath
}

// WriteRunMetadata serializes metadata to disk. Any failure is fatal to the
// run; there is no partial-write recovery.
func (ms *MetadataStore) WriteRunMetadata(metadata models.RunMetadata) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return common.WrapError(err, "failed to marshal run metadata")
	}

	if err := os.WriteFile(ms.filePath, data, 0644); err != nil {
		ms.logger.Error().Err(err).Str("file_path", ms.filePath).Msg("Failed to write metadata file")
		return common.WrapError(err, "failed to write metadata file: "+ms.filePath)
	}

	ms.logger.Info().
		Str("file_path", ms.filePath).
		Int("records", len(metadata.Snapshots)).
		Msg("Run metadata written")

	return nil
}
