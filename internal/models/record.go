package models

import "time"

// SnapshotOutcome describes the result of a single download attempt.
type SnapshotOutcome string

const (
	// OutcomeSuccess means content was downloaded and written to disk.
	OutcomeSuccess SnapshotOutcome = "success"
	// OutcomeFailed means the download failed; no file was written.
	OutcomeFailed SnapshotOutcome = "failed"
)

// SnapshotRecord is the metadata entry written for every attempted snapshot
// download. Records are appended in consumption order and never mutated
// after creation.
type SnapshotRecord struct {
	Timestamp   string          `json:"timestamp"`
	CapturedAt  time.Time       `json:"captured_at"`
	OriginalURL string          `json:"original_url"`
	StatusCode  int             `json:"status_code"`
	MimeType    string          `json:"mime_type"`
	Outcome     SnapshotOutcome `json:"outcome"`
	FilePath    string          `json:"file_path,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// NewSuccessRecord builds a record for a snapshot whose content was saved to
// filePath.
func NewSuccessRecord(snapshot Snapshot, filePath string) SnapshotRecord {
	return SnapshotRecord{
		Timestamp:   snapshot.Timestamp,
		CapturedAt:  snapshot.CapturedAt,
		OriginalURL: snapshot.OriginalURL,
		StatusCode:  snapshot.StatusCode,
		MimeType:    snapshot.MimeType,
		Outcome:     OutcomeSuccess,
		FilePath:    filePath,
	}
}

// NewFailedRecord builds a record for a snapshot whose download failed.
func NewFailedRecord(snapshot Snapshot, err error) SnapshotRecord {
	record := SnapshotRecord{
		Timestamp:   snapshot.Timestamp,
		CapturedAt:  snapshot.CapturedAt,
		OriginalURL: snapshot.OriginalURL,
		StatusCode:  snapshot.StatusCode,
		MimeType:    snapshot.MimeType,
		Outcome:     OutcomeFailed,
	}
	if err != nil {
		record.Error = err.Error()
	}
	return record
}

// RunMetadata is the top-level structure serialized to metadata.json after
// all snapshots have been processed.
type RunMetadata struct {
	URL            string           `json:"url"`
	ScrapedAt      time.Time        `json:"scraped_at"`
	TotalAttempted int              `json:"total_attempted"`
	TotalSucceeded int              `json:"total_succeeded"`
	TotalFailed    int              `json:"total_failed"`
	Snapshots      []SnapshotRecord `json:"snapshots"`
}
