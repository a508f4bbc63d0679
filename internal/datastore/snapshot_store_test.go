package datastore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
)

func testSnapshot(t *testing.T, ts string) models.Snapshot {
	t.Helper()
	capturedAt, err := models.ParseCDXTimestamp(ts)
	require.NoError(t, err)
	return models.Snapshot{
		Timestamp:   ts,
		CapturedAt:  capturedAt,
		OriginalURL: "https://example.com/",
		StatusCode:  200,
		MimeType:    "text/html",
	}
}

func TestSnapshotStore_WriteSnapshot(t *testing.T) {
	outputDir := t.TempDir()
	store := NewSnapshotStore(config.StorageConfig{OutputDir: outputDir}, zerolog.Nop())

	snapshot := testSnapshot(t, "20230415093045")
	filePath, err := store.WriteSnapshot(snapshot, []byte("<html>hi</html>"), "text/html; charset=utf-8")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outputDir, "2023-04-15_09-30-45.html"), filePath)

	content, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "<html>hi</html>", string(content))
}

func TestSnapshotStore_EnsureOutputDir(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "nested", "snapshots")
	store := NewSnapshotStore(config.StorageConfig{OutputDir: outputDir}, zerolog.Nop())

	require.NoError(t, store.EnsureOutputDir())

	info, err := os.Stat(outputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExtensionForContentType(t *testing.T) {
	tests := []struct {
		contentType string
		expected    string
	}{
		{"text/html", ".html"},
		{"text/html; charset=utf-8", ".html"},
		{"application/json", ".json"},
		{"text/plain", ".txt"},
		{"image/png", ".png"},
		{"application/pdf", ".pdf"},
		{"application/octet-stream", ".html"}, // unknown falls back
		{"", ".html"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtensionForContentType(tt.contentType))
		})
	}
}

func TestMetadataStore_WriteRunMetadata(t *testing.T) {
	outputDir := t.TempDir()
	cfg := config.StorageConfig{OutputDir: outputDir, MetadataFilename: "metadata.json"}
	store := NewMetadataStore(cfg, zerolog.Nop())

	snapshot := testSnapshot(t, "20230415093045")
	metadata := models.RunMetadata{
		URL:            "https://example.com",
		ScrapedAt:      time.Date(2023, 4, 20, 12, 0, 0, 0, time.UTC),
		TotalAttempted: 1,
		TotalSucceeded: 1,
		Snapshots: []models.SnapshotRecord{
			models.NewSuccessRecord(snapshot, filepath.Join(outputDir, "2023-04-15_09-30-45.html")),
		},
	}

	require.NoError(t, store.WriteRunMetadata(metadata))

	data, err := os.ReadFile(filepath.Join(outputDir, "metadata.json"))
	require.NoError(t, err)

	var decoded models.RunMetadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, metadata.URL, decoded.URL)
	assert.Equal(t, 1, decoded.TotalAttempted)
	require.Len(t, decoded.Snapshots, 1)
	assert.Equal(t, models.OutcomeSuccess, decoded.Snapshots[0].Outcome)
}

func TestMetadataStore_OverwritesExistingFile(t *testing.T) {
	outputDir := t.TempDir()
	cfg := config.StorageConfig{OutputDir: outputDir, MetadataFilename: "metadata.json"}
	store := NewMetadataStore(cfg, zerolog.Nop())

	metadataPath := filepath.Join(outputDir, "metadata.json")
	require.NoError(t, os.WriteFile(metadataPath, []byte("stale"), 0644))

	require.NoError(t, store.WriteRunMetadata(models.RunMetadata{URL: "https://example.com"}))

	data, err := os.ReadFile(metadataPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "https://example.com")
}
