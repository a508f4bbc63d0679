package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/common"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultCDXAPIURL, cfg.ArchiveConfig.CDXAPIURL)
	assert.Equal(t, DefaultContentBaseURL, cfg.ArchiveConfig.ContentBaseURL)
	assert.Equal(t, DefaultOutputDir, cfg.StorageConfig.OutputDir)
	assert.Equal(t, DefaultMetadataFilename, cfg.StorageConfig.MetadataFilename)
	assert.Equal(t, DefaultRequestDelaySeconds, cfg.FetcherConfig.RequestDelaySeconds)
	assert.Equal(t, 0, cfg.FetcherConfig.Retry.MaxRetries)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.json")

	configData := `{
		"log_config": {
			"log_level": "debug"
		},
		"fetcher_config": {
			"user_agent": "test-agent",
			"request_delay_seconds": 0.5
		},
		"storage_config": {
			"output_dir": "archive"
		}
	}`

	err := os.WriteFile(configFile, []byte(configData), 0644)
	require.NoError(t, err)

	cfg, err := LoadGlobalConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "test-agent", cfg.FetcherConfig.UserAgent)
	assert.Equal(t, 0.5, cfg.FetcherConfig.RequestDelaySeconds)
	assert.Equal(t, "archive", cfg.StorageConfig.OutputDir)
	// Untouched sections keep their defaults
	assert.Equal(t, DefaultCDXAPIURL, cfg.ArchiveConfig.CDXAPIURL)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configData := `
archive_config:
  cdx_api_url: "http://localhost:8080/cdx"
fetcher_config:
  request_timeout_secs: 10
  retry:
    max_retries: 2
`
	err := os.WriteFile(configFile, []byte(configData), 0644)
	require.NoError(t, err)

	cfg, err := LoadGlobalConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/cdx", cfg.ArchiveConfig.CDXAPIURL)
	assert.Equal(t, 10, cfg.FetcherConfig.RequestTimeoutSecs)
	assert.Equal(t, 2, cfg.FetcherConfig.Retry.MaxRetries)
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	err := os.WriteFile(configFile, []byte("archive_config: ["), 0644)
	require.NoError(t, err)

	cfg, err := LoadGlobalConfig(configFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_BadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestValidateConfig_BadEndpointURL(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.ArchiveConfig.CDXAPIURL = "not a url"

	err := ValidateConfig(cfg)
	assert.Error(t, err)
}

func TestValidateConfig_RetryDelaysInverted(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.FetcherConfig.Retry.MaxRetries = 3
	cfg.FetcherConfig.Retry.BaseDelaySecs = 60
	cfg.FetcherConfig.Retry.MaxDelaySecs = 10

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_delay_secs")

	var cfgErr *common.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "fetcher_config", cfgErr.Section)
}
