package config

// Archive endpoint defaults
const (
	DefaultCDXAPIURL      = "https://web.archive.org/cdx/search/cdx"
	DefaultContentBaseURL = "https://web.archive.org/web"
)

// Fetcher defaults
const (
	DefaultRequestTimeoutSecs  = 30
	DefaultRequestDelaySeconds = 1.0
	DefaultUserAgent           = "waybackgrab/1.0"
)

// Retry defaults. Zero retries means a failed download is terminal for that
// snapshot, which is the out-of-the-box behavior.
const (
	DefaultMaxRetries         = 0
	DefaultRetryBaseDelaySecs = 2
	DefaultRetryMaxDelaySecs  = 30
)

// Storage defaults
const (
	DefaultOutputDir        = "snapshots"
	DefaultMetadataFilename = "metadata.json"
)

// Log defaults
const (
	DefaultLogFile       = ""
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100
)
