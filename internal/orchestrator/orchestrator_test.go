package orchestrator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
)

// newArchiveServer simulates both the CDX index endpoint (under /cdx) and
// the content endpoint (under /web).
func newArchiveServer(t *testing.T, cdxBody string, failTimestamps map[string]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/cdx"):
			_, _ = w.Write([]byte(cdxBody))
		case strings.HasPrefix(r.URL.Path, "/web/"):
			parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/web/"), "/", 2)
			if failTimestamps[parts[0]] {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>" + parts[0] + "</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestConfig(serverURL, outputDir string) *config.GlobalConfig {
	cfg := config.NewDefaultGlobalConfig()
	cfg.ArchiveConfig.CDXAPIURL = serverURL + "/cdx"
	cfg.ArchiveConfig.ContentBaseURL = serverURL + "/web"
	cfg.StorageConfig.OutputDir = outputDir
	cfg.FetcherConfig.RequestDelaySeconds = 0
	return cfg
}

const threeDayListing = `[
	["urlkey","timestamp","original","mimetype","statuscode","digest","length"],
	["com,example)/","20230101120000","https://example.com/","text/html","200","A","1"],
	["com,example)/","20230102120000","https://example.com/","text/html","200","B","1"],
	["com,example)/","20230103120000","https://example.com/","text/html","200","C","1"]]`

func TestRun_EndToEnd(t *testing.T) {
	server := newArchiveServer(t, threeDayListing, nil)
	defer server.Close()

	outputDir := t.TempDir()
	o, err := New(newTestConfig(server.URL, outputDir), zerolog.Nop())
	require.NoError(t, err)

	metadata, err := o.Run(context.Background(), RunOptions{TargetURL: "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, 3, metadata.TotalAttempted)
	assert.Equal(t, 3, metadata.TotalSucceeded)
	assert.Equal(t, 0, metadata.TotalFailed)
	require.Len(t, metadata.Snapshots, 3)

	// Records stay in capture order
	assert.Equal(t, "20230101120000", metadata.Snapshots[0].Timestamp)
	assert.Equal(t, "20230103120000", metadata.Snapshots[2].Timestamp)

	// metadata.json was written and round-trips
	data, err := os.ReadFile(filepath.Join(outputDir, "metadata.json"))
	require.NoError(t, err)
	var decoded models.RunMetadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, metadata.TotalSucceeded, decoded.TotalSucceeded)
	require.Len(t, decoded.Snapshots, 3)
}

func TestRun_SecondSnapshotFails(t *testing.T) {
	server := newArchiveServer(t, threeDayListing, map[string]bool{"20230102120000": true})
	defer server.Close()

	outputDir := t.TempDir()
	o, err := New(newTestConfig(server.URL, outputDir), zerolog.Nop())
	require.NoError(t, err)

	metadata, err := o.Run(context.Background(), RunOptions{TargetURL: "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, 3, metadata.TotalAttempted)
	assert.Equal(t, 2, metadata.TotalSucceeded)
	assert.Equal(t, 1, metadata.TotalFailed)

	outcomes := []models.SnapshotOutcome{
		metadata.Snapshots[0].Outcome,
		metadata.Snapshots[1].Outcome,
		metadata.Snapshots[2].Outcome,
	}
	assert.Equal(t, []models.SnapshotOutcome{models.OutcomeSuccess, models.OutcomeFailed, models.OutcomeSuccess}, outcomes)

	// Exactly two snapshot files on disk, plus metadata.json
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRun_LimitOne(t *testing.T) {
	server := newArchiveServer(t, threeDayListing, nil)
	defer server.Close()

	outputDir := t.TempDir()
	o, err := New(newTestConfig(server.URL, outputDir), zerolog.Nop())
	require.NoError(t, err)

	metadata, err := o.Run(context.Background(), RunOptions{TargetURL: "https://example.com", Limit: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, metadata.TotalAttempted)
	require.Len(t, metadata.Snapshots, 1)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // one snapshot file + metadata.json
}

func TestRun_InvalidTargetURL(t *testing.T) {
	o, err := New(newTestConfig("http://unused", t.TempDir()), zerolog.Nop())
	require.NoError(t, err)

	_, err = o.Run(context.Background(), RunOptions{TargetURL: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target URL")
}

func TestRun_IndexFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	outputDir := t.TempDir()
	o, err := New(newTestConfig(server.URL, outputDir), zerolog.Nop())
	require.NoError(t, err)

	_, err = o.Run(context.Background(), RunOptions{TargetURL: "https://example.com"})
	require.Error(t, err)

	// No metadata is produced when the index query fails
	assert.NoFileExists(t, filepath.Join(outputDir, "metadata.json"))
}

func TestRun_RepeatRunsProduceIdenticalRecords(t *testing.T) {
	server := newArchiveServer(t, threeDayListing, nil)
	defer server.Close()

	run := func() []models.SnapshotRecord {
		o, err := New(newTestConfig(server.URL, t.TempDir()), zerolog.Nop())
		require.NoError(t, err)
		metadata, err := o.Run(context.Background(), RunOptions{TargetURL: "https://example.com"})
		require.NoError(t, err)
		return metadata.Snapshots
	}

	first := run()
	second := run()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Timestamp, second[i].Timestamp)
		assert.Equal(t, first[i].Outcome, second[i].Outcome)
	}
}

func TestRun_NoSnapshotsStillWritesMetadata(t *testing.T) {
	server := newArchiveServer(t, "[]", nil)
	defer server.Close()

	outputDir := t.TempDir()
	o, err := New(newTestConfig(server.URL, outputDir), zerolog.Nop())
	require.NoError(t, err)

	metadata, err := o.Run(context.Background(), RunOptions{TargetURL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, 0, metadata.TotalAttempted)
	assert.FileExists(t, filepath.Join(outputDir, "metadata.json"))
}
