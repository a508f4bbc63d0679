package config

// FetcherConfig defines HTTP behavior for snapshot downloads.
type FetcherConfig struct {
	RequestTimeoutSecs  int         `json:"request_timeout_secs,omitempty" yaml:"request_timeout_secs,omitempty" validate:"omitempty,min=1"`
	RequestDelaySeconds float64     `json:"request_delay_seconds,omitempty" yaml:"request_delay_seconds,omitempty" validate:"omitempty,min=0"`
	UserAgent           string      `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Retry               RetryConfig `json:"retry,omitempty" yaml:"retry,omitempty"`
}

// RetryConfig defines the bounded retry policy for per-snapshot downloads.
// MaxRetries of zero disables retries entirely.
type RetryConfig struct {
	MaxRetries       int   `json:"max_retries,omitempty" yaml:"max_retries,omitempty" validate:"omitempty,min=0"`
	BaseDelaySecs    int   `json:"base_delay_secs,omitempty" yaml:"base_delay_secs,omitempty" validate:"omitempty,min=1"`
	MaxDelaySecs     int   `json:"max_delay_secs,omitempty" yaml:"max_delay_secs,omitempty" validate:"omitempty,min=1"`
	RetryStatusCodes []int `json:"retry_status_codes,omitempty" yaml:"retry_status_codes,omitempty"`
}

// NewDefaultFetcherConfig creates fetcher configuration with defaults
func NewDefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		RequestTimeoutSecs:  DefaultRequestTimeoutSecs,
		RequestDelaySeconds: DefaultRequestDelaySeconds,
		UserAgent:           DefaultUserAgent,
		Retry:               NewDefaultRetryConfig(),
	}
}

// NewDefaultRetryConfig creates retry configuration with retries disabled
func NewDefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:       DefaultMaxRetries,
		BaseDelaySecs:    DefaultRetryBaseDelaySecs,
		MaxDelaySecs:     DefaultRetryMaxDelaySecs,
		RetryStatusCodes: []int{429, 500, 502, 503, 504},
	}
}
