package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration of the proposal tool.
type Config struct {
	Dataset       string   `yaml:"dataset"`        // file path or http(s) URL
	Addr          string   `yaml:"addr"`           // serve listen address
	StaticDir     string   `yaml:"static_dir"`     // served under /static, empty disables
	DownloadDir   string   `yaml:"download_dir"`   // where downloads are saved
	FreshPatterns []string `yaml:"fresh_patterns"` // doublestar patterns never cached by clients
	LogLevel      string   `yaml:"log_level"`      // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Dataset:       "data/tools.csv",
		Addr:          ":8080",
		DownloadDir:   ".",
		FreshPatterns: []string{"**/data/*.csv"},
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Unknown keys
// are rejected. An empty path means no file: defaults are returned as is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel maps a level name to a slog.Level. The empty string is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
