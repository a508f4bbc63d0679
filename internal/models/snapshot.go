package models

import "time"

// CDXTimestampLayout is the 14-digit capture timestamp format used by the
// Wayback Machine CDX index (YYYYMMDDhhmmss).
const CDXTimestampLayout = "20060102150405"

// Snapshot represents a single archived capture of a URL, as produced by the
// snapshot lister from raw CDX index rows. Descriptors are created once and
// never mutated.
type Snapshot struct {
	// Timestamp is the raw 14-digit CDX capture timestamp. It is kept as
	// returned by the index because the content-retrieval URL requires it
	// verbatim.
	Timestamp string `json:"timestamp"`

	// CapturedAt is Timestamp parsed to second precision, in UTC.
	CapturedAt time.Time `json:"captured_at"`

	// OriginalURL is the URL that was captured.
	OriginalURL string `json:"original_url"`

	// StatusCode is the HTTP status the archive recorded for the capture.
	StatusCode int `json:"status_code"`

	// MimeType is the MIME type the archive recorded for the capture.
	MimeType string `json:"mime_type"`
}

// DateKey returns the capture's calendar date (UTC) in YYYY-MM-DD form.
// Snapshots sharing a DateKey are collapsed to the first in index order.
func (s *Snapshot) DateKey() string {
	return s.CapturedAt.Format("2006-01-02")
}

// ParseCDXTimestamp parses a raw 14-digit CDX timestamp into a UTC time.
func ParseCDXTimestamp(raw string) (time.Time, error) {
	return time.Parse(CDXTimestampLayout, raw)
}
