package config

// StorageConfig defines where snapshot files and run metadata are written.
type StorageConfig struct {
	OutputDir        string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	MetadataFilename string `json:"metadata_filename,omitempty" yaml:"metadata_filename,omitempty"`
}

// NewDefaultStorageConfig creates storage configuration with defaults
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		OutputDir:        DefaultOutputDir,
		MetadataFilename: DefaultMetadataFilename,
	}
}
