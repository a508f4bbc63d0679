// Package cdx lists archived captures of a URL through the Wayback Machine
// CDX index API.
package cdx

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/common"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/httpclient"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
)

// SuccessStatusCode is the capture status required for a snapshot to be
// listed. Captures with any other recorded status are dropped silently.
const SuccessStatusCode = http.StatusOK

// collapseDigits asks the index to collapse captures whose timestamps share
// the first 8 digits (YYYYMMDD), i.e. one capture per calendar day.
const collapseDigits = 8

// Client queries the CDX index for the capture history of a URL.
type Client struct {
	httpClient *httpclient.HTTPClient
	cfg        config.ArchiveConfig
	logger     zerolog.Logger
}

// NewClient creates a CDX index client.
func NewClient(httpClient *httpclient.HTTPClient, cfg config.ArchiveConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger.With().Str("component", "CDXClient").Logger(),
	}
}

// ListSnapshots returns the successful captures of targetURL, at most one per
// calendar day, in index order, truncated to limit when limit > 0. A failure
// to query or parse the index is fatal: no partial listing is ever returned.
func (c *Client) ListSnapshots(ctx context.Context, targetURL string, limit int) ([]models.Snapshot, error) {
	queryURL, err := c.buildQueryURL(targetURL, limit)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Str("url", targetURL).Msg("Fetching snapshot list from CDX index")

	result, err := c.httpClient.FetchContent(ctx, queryURL)
	if err != nil {
		return nil, common.WrapError(err, "CDX index query failed")
	}

	snapshots, err := ParseResponse(result.Content)
	if err != nil {
		return nil, err
	}

	listed := filterAndCollapse(snapshots, limit)

	c.logger.Info().
		Int("raw_rows", len(snapshots)).
		Int("listed", len(listed)).
		Msg("Snapshot listing complete")

	return listed, nil
}

// buildQueryURL constructs the CDX query. The index is asked to pre-filter
// and pre-collapse; filterAndCollapse re-applies both locally so the listing
// contract does not depend on server behavior.
func (c *Client) buildQueryURL(targetURL string, limit int) (string, error) {
	base, err := url.Parse(c.cfg.CDXAPIURL)
	if err != nil {
		return "", common.WrapError(err, "invalid CDX API URL")
	}

	params := url.Values{}
	params.Set("url", targetURL)
	params.Set("output", "json")
	params.Set("collapse", "timestamp:"+strconv.Itoa(collapseDigits))
	params.Set("filter", "statuscode:"+strconv.Itoa(SuccessStatusCode))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	base.RawQuery = params.Encode()
	return base.String(), nil
}

// filterAndCollapse enforces the listing invariants: only successful
// captures, the first capture per calendar day in index order, and at most
// limit entries when limit > 0.
func filterAndCollapse(snapshots []models.Snapshot, limit int) []models.Snapshot {
	seenDates := make(map[string]struct{}, len(snapshots))
	listed := make([]models.Snapshot, 0, len(snapshots))

	for _, snapshot := range snapshots {
		if snapshot.StatusCode != SuccessStatusCode {
			continue
		}

		dateKey := snapshot.DateKey()
		if _, seen := seenDates[dateKey]; seen {
			continue
		}
		seenDates[dateKey] = struct{}{}

		listed = append(listed, snapshot)
		if limit > 0 && len(listed) >= limit {
			break
		}
	}

	return listed
}
