// Package fetcher downloads listed snapshots one at a time and records the
// outcome of every attempt.
package fetcher

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/datastore"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/httpclient"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
)

// Fetcher downloads snapshot content sequentially, writing each successful
// download through the snapshot store. A single snapshot's failure is never
// fatal; storage failures are.
type Fetcher struct {
	httpClient *httpclient.HTTPClient
	store      *datastore.SnapshotStore
	archiveCfg config.ArchiveConfig
	delay      time.Duration
	logger     zerolog.Logger
}

// New creates a fetcher. delaySeconds is the pause between consecutive
// download attempts; zero disables the pause.
func New(
	httpClient *httpclient.HTTPClient,
	store *datastore.SnapshotStore,
	archiveCfg config.ArchiveConfig,
	delaySeconds float64,
	logger zerolog.Logger,
) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		store:      store,
		archiveCfg: archiveCfg,
		delay:      time.Duration(delaySeconds * float64(time.Second)),
		logger:     logger.With().Str("component", "Fetcher").Logger(),
	}
}

// FetchAll consumes snapshots in order, one at a time. It returns one record
// per attempted snapshot, in consumption order. After each attempt except
// the last it pauses for the configured delay. The returned error is non-nil
// only for fatal conditions: context cancellation or a file write failure.
func (f *Fetcher) FetchAll(ctx context.Context, snapshots []models.Snapshot) ([]models.SnapshotRecord, error) {
	records := make([]models.SnapshotRecord, 0, len(snapshots))

	for i, snapshot := range snapshots {
		f.logger.Info().
			Int("current", i+1).
			Int("total", len(snapshots)).
			Str("timestamp", snapshot.Timestamp).
			Msg("Downloading snapshot")

		record, err := f.fetchOne(ctx, snapshot)
		if err != nil {
			return records, err
		}
		records = append(records, record)

		// No pause follows the last snapshot.
		if i < len(snapshots)-1 {
			if err := f.pause(ctx); err != nil {
				return records, err
			}
		}
	}

	return records, nil
}

// fetchOne attempts a single snapshot download. Download failures are folded
// into the returned record; only storage failures propagate as errors.
func (f *Fetcher) fetchOne(ctx context.Context, snapshot models.Snapshot) (models.SnapshotRecord, error) {
	contentURL := f.archiveCfg.ContentBaseURL + "/" + snapshot.Timestamp + "/" + snapshot.OriginalURL

	result, err := f.httpClient.FetchContent(ctx, contentURL)
	if err != nil {
		if ctx.Err() != nil {
			return models.SnapshotRecord{}, ctx.Err()
		}
		f.logger.Warn().
			Err(err).
			Str("timestamp", snapshot.Timestamp).
			Str("url", contentURL).
			Msg("Snapshot download failed")
		return models.NewFailedRecord(snapshot, err), nil
	}

	filePath, err := f.store.WriteSnapshot(snapshot, result.Content, result.ContentType)
	if err != nil {
		// Not being able to write output is fatal for the whole run.
		return models.SnapshotRecord{}, err
	}

	f.logger.Info().
		Str("timestamp", snapshot.Timestamp).
		Str("file_path", filePath).
		Msg("Snapshot saved")

	return models.NewSuccessRecord(snapshot, filePath), nil
}

// pause blocks for the configured inter-request delay, honoring context
// cancellation.
func (f *Fetcher) pause(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
