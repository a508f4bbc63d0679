// Package orchestrator wires the snapshot lister, fetcher and stores into a
// single sequential run.
package orchestrator

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/cdx"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/common"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/datastore"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/fetcher"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/httpclient"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/urlhandler"
)

// RunOptions holds the per-run parameters supplied on the command line.
type RunOptions struct {
	TargetURL string
	Limit     int
}

// Orchestrator executes one scrape run end to end.
type Orchestrator struct {
	cfg           *config.GlobalConfig
	logger        zerolog.Logger
	cdxClient     *cdx.Client
	snapshotStore *datastore.SnapshotStore
	metadataStore *datastore.MetadataStore
	fetcher       *fetcher.Fetcher
}

// New builds an orchestrator and its dependencies from configuration.
func New(cfg *config.GlobalConfig, logger zerolog.Logger) (*Orchestrator, error) {
	fetcherCfg := cfg.FetcherConfig

	httpClient, err := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(time.Duration(fetcherCfg.RequestTimeoutSecs) * time.Second).
		WithUserAgent(fetcherCfg.UserAgent).
		WithRetry(httpclient.RetryHandlerConfig{
			MaxRetries:       fetcherCfg.Retry.MaxRetries,
			BaseDelay:        time.Duration(fetcherCfg.Retry.BaseDelaySecs) * time.Second,
			MaxDelay:         time.Duration(fetcherCfg.Retry.MaxDelaySecs) * time.Second,
			RetryStatusCodes: fetcherCfg.Retry.RetryStatusCodes,
		}).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to build HTTP client")
	}

	snapshotStore := datastore.NewSnapshotStore(cfg.StorageConfig, logger)

	return &Orchestrator{
		cfg:           cfg,
		logger:        logger.With().Str("component", "Orchestrator").Logger(),
		cdxClient:     cdx.NewClient(httpClient, cfg.ArchiveConfig, logger),
		snapshotStore: snapshotStore,
		metadataStore: datastore.NewMetadataStore(cfg.StorageConfig, logger),
		fetcher:       fetcher.New(httpClient, snapshotStore, cfg.ArchiveConfig, fetcherCfg.RequestDelaySeconds, logger),
	}, nil
}

// Run executes a full scrape: validate the target, list its snapshots,
// download each one, and write the run metadata. The returned metadata is
// what was serialized to disk.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*models.RunMetadata, error) {
	targetURL, err := urlhandler.NormalizeURL(opts.TargetURL)
	if err != nil {
		return nil, common.WrapError(err, "invalid target URL")
	}
	if err := urlhandler.ValidateURLFormat(targetURL); err != nil {
		return nil, common.WrapError(err, "invalid target URL")
	}

	if err := o.snapshotStore.EnsureOutputDir(); err != nil {
		return nil, err
	}

	snapshots, err := o.cdxClient.ListSnapshots(ctx, targetURL, opts.Limit)
	if err != nil {
		return nil, err
	}

	if len(snapshots) == 0 {
		o.logger.Warn().Str("url", targetURL).Msg("No snapshots found")
	}

	records, err := o.fetcher.FetchAll(ctx, snapshots)
	if err != nil {
		return nil, err
	}

	metadata := buildRunMetadata(targetURL, records)
	if err := o.metadataStore.WriteRunMetadata(metadata); err != nil {
		return nil, err
	}

	o.logger.Info().
		Int("attempted", metadata.TotalAttempted).
		Int("succeeded", metadata.TotalSucceeded).
		Int("failed", metadata.TotalFailed).
		Str("output_dir", o.snapshotStore.OutputDir()).
		Msg("Scrape run complete")

	return &metadata, nil
}

// buildRunMetadata assembles the run summary from the ordered records.
func buildRunMetadata(targetURL string, records []models.SnapshotRecord) models.RunMetadata {
	metadata := models.RunMetadata{
		URL:            targetURL,
		ScrapedAt:      time.Now().UTC(),
		TotalAttempted: len(records),
		Snapshots:      records,
	}

	for _, record := range records {
		if record.Outcome == models.OutcomeSuccess {
			metadata.TotalSucceeded++
		} else {
			metadata.TotalFailed++
		}
	}

	return metadata
}
