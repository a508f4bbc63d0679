// Package datastore persists downloaded snapshot content and run metadata
// under the configured output directory.
package datastore

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/common"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
)

// snapshotFilenameLayout names snapshot files by capture time.
const snapshotFilenameLayout = "2006-01-02_15-04-05"

// DefaultExtension is used when the content type maps to no known extension.
const DefaultExtension = ".html"

// extensionsByContentType maps archived content types to file extensions.
var extensionsByContentType = map[string]string{
	"text/html":              ".html",
	"application/xhtml+xml":  ".html",
	"text/plain":             ".txt",
	"text/css":               ".css",
	"text/xml":               ".xml",
	"application/xml":        ".xml",
	"application/json":       ".json",
	"application/javascript": ".js",
	"text/javascript":        ".js",
	"application/pdf":        ".pdf",
	"image/png":              ".png",
	"image/jpeg":             ".jpg",
	"image/gif":              ".gif",
	"image/svg+xml":          ".svg",
}

// SnapshotStore writes downloaded snapshot content to timestamp-named files.
type SnapshotStore struct {
	logger    zerolog.Logger
	outputDir string
}

// NewSnapshotStore creates a snapshot store rooted at the configured output
// directory.
func NewSnapshotStore(cfg config.StorageConfig, logger zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{
		logger:    logger.With().Str("component", "SnapshotStore").Logger(),
		outputDir: cfg.OutputDir,
	}
}

// OutputDir returns the directory snapshot files are written to.
func (ss *SnapshotStore) OutputDir() string {
	return ss.outputDir
}

// EnsureOutputDir creates the output directory if it does not exist.
// A failure here is fatal to the run.
func (ss *SnapshotStore) EnsureOutputDir() error {
	if err := os.MkdirAll(ss.outputDir, 0755); err != nil {
		ss.logger.Error().Err(err).Str("directory", ss.outputDir).Msg("Failed to create output directory")
		return common.WrapError(err, "failed to create output directory: "+ss.outputDir)
	}
	return nil
}

// WriteSnapshot writes raw snapshot content to a file named
// YYYY-MM-DD_HH-MM-SS.<ext> and returns the file's path. The extension is
// derived from contentType and defaults to .html.
func (ss *SnapshotStore) WriteSnapshot(snapshot models.Snapshot, content []byte, contentType string) (string, error) {
	fileName := snapshot.CapturedAt.Format(snapshotFilenameLayout) + ExtensionForContentType(contentType)
	filePath := filepath.Join(ss.outputDir, fileName)

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		ss.logger.Error().Err(err).Str("file_path", filePath).Msg("Failed to write snapshot file")
		return "", common.WrapError(err, "failed to write snapshot file: "+filePath)
	}

	ss.logger.Debug().
		Str("file_path", filePath).
		Int("content_size", len(content)).
		Msg("Snapshot content written")

	return filePath, nil
}

// ExtensionForContentType maps a Content-Type header value to a file
// extension, ignoring media type parameters such as charset.
func ExtensionForContentType(contentType string) string {
	if contentType == "" {
		return DefaultExtension
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}

	if ext, ok := extensionsByContentType[mediaType]; ok {
		return ext
	}
	return DefaultExtension
}
