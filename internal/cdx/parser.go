package cdx

import (
	"encoding/json"
	"strconv"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/common"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/models"
)

// Column names of interest in a CDX JSON response. The first row of the
// response is a header row naming the columns of every following row.
const (
	columnTimestamp  = "timestamp"
	columnOriginal   = "original"
	columnStatusCode = "statuscode"
	columnMimeType   = "mimetype"
)

// ParseResponse converts a raw CDX JSON body (an array of string arrays,
// header row first) into snapshot descriptors. Malformed rows are a hard
// error: the index response is either trusted in full or rejected.
func ParseResponse(data []byte) ([]models.Snapshot, error) {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, common.WrapError(err, "malformed CDX response body")
	}

	// Header row only, or nothing at all: no captures recorded.
	if len(rows) < 2 {
		return nil, nil
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	snapshots := make([]models.Snapshot, 0, len(rows)-1)
	for i, row := range rows[1:] {
		snapshot, err := parseRow(row, columns)
		if err != nil {
			return nil, common.WrapErrorf(err, "malformed CDX row %d", i+1)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// columnIndexes holds the position of each required column in a CDX row.
type columnIndexes struct {
	timestamp  int
	original   int
	statusCode int
	mimeType   int
}

func mapColumns(header []string) (columnIndexes, error) {
	indexes := columnIndexes{timestamp: -1, original: -1, statusCode: -1, mimeType: -1}
	for i, name := range header {
		switch name {
		case columnTimestamp:
			indexes.timestamp = i
		case columnOriginal:
			indexes.original = i
		case columnStatusCode:
			indexes.statusCode = i
		case columnMimeType:
			indexes.mimeType = i
		}
	}

	if indexes.timestamp < 0 || indexes.original < 0 || indexes.statusCode < 0 || indexes.mimeType < 0 {
		return indexes, common.NewError("CDX header row is missing required columns: %v", header)
	}
	return indexes, nil
}

func parseRow(row []string, columns columnIndexes) (models.Snapshot, error) {
	maxIndex := columns.timestamp
	for _, idx := range []int{columns.original, columns.statusCode, columns.mimeType} {
		if idx > maxIndex {
			maxIndex = idx
		}
	}
	if len(row) <= maxIndex {
		return models.Snapshot{}, common.NewError("row has %d columns, need at least %d", len(row), maxIndex+1)
	}

	rawTimestamp := row[columns.timestamp]
	capturedAt, err := models.ParseCDXTimestamp(rawTimestamp)
	if err != nil {
		return models.Snapshot{}, common.WrapErrorf(err, "invalid capture timestamp '%s'", rawTimestamp)
	}

	statusCode, err := strconv.Atoi(row[columns.statusCode])
	if err != nil {
		return models.Snapshot{}, common.WrapErrorf(err, "invalid status code '%s'", row[columns.statusCode])
	}

	return models.Snapshot{
		Timestamp:   rawTimestamp,
		CapturedAt:  capturedAt,
		OriginalURL: row[columns.original],
		StatusCode:  statusCode,
		MimeType:    row[columns.mimeType],
	}, nil
}
