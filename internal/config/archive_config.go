package config

// ArchiveConfig defines the Wayback Machine endpoints used for listing and
// retrieving snapshots.
type ArchiveConfig struct {
	// CDXAPIURL is the capture index query endpoint.
	CDXAPIURL string `json:"cdx_api_url,omitempty" yaml:"cdx_api_url,omitempty" validate:"omitempty,url"`
	// ContentBaseURL is the base URL for archived content retrieval. The
	// capture timestamp and original URL are appended as path segments.
	ContentBaseURL string `json:"content_base_url,omitempty" yaml:"content_base_url,omitempty" validate:"omitempty,url"`
}

// NewDefaultArchiveConfig creates archive configuration pointing at the
// public Wayback Machine.
func NewDefaultArchiveConfig() ArchiveConfig {
	return ArchiveConfig{
		CDXAPIURL:      DefaultCDXAPIURL,
		ContentBaseURL: DefaultContentBaseURL,
	}
}
