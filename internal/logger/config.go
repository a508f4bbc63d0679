package logger

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
)

// LogFormat selects how log events are rendered.
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// String returns string representation of LogFormat
func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// LoggerConfig is the resolved logger setup: level and format already
// parsed, rotation limits already defaulted.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// DefaultLoggerConfig resolves the application's default log settings.
func DefaultLoggerConfig() LoggerConfig {
	return FromLogConfig(config.NewDefaultLogConfig())
}

// FromLogConfig resolves a file/CLI log section into a LoggerConfig. An
// unknown level falls back to info, an unknown format to console, and
// non-positive rotation limits to the application defaults. File output is
// enabled exactly when a log file path is set.
func FromLogConfig(cfg config.LogConfig) LoggerConfig {
	maxSizeMB := cfg.MaxLogSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = config.DefaultMaxLogSizeMB
	}
	maxBackups := cfg.MaxLogBackups
	if maxBackups <= 0 {
		maxBackups = config.DefaultMaxLogBackups
	}

	return LoggerConfig{
		Level:         ParseLevel(cfg.LogLevel),
		Format:        ParseFormat(cfg.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     maxSizeMB,
		MaxBackups:    maxBackups,
	}
}

// ParseLevel maps a level name to its zerolog level, defaulting to info.
func ParseLevel(levelStr string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// ParseFormat maps a format name to a LogFormat, defaulting to console.
func ParseFormat(formatStr string) LogFormat {
	switch strings.ToLower(formatStr) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}
