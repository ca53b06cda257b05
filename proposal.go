package proposal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/proposal/internal/platform"
	"github.com/aretw0/proposal/pkg/assembler"
	"github.com/aretw0/proposal/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// Config is the YAML configuration file model.
type Config = platform.Config

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource injects a custom dataset source.
func WithSource(src core.Source) Option {
	return platform.WithSource(src)
}

// WithDataset sets the dataset path or URL.
func WithDataset(uri string) Option {
	return platform.WithDataset(uri)
}

// WithHTTPClient sets the client used for remote datasets.
func WithHTTPClient(client *http.Client) Option {
	return platform.WithHTTPClient(client)
}

// WithTimeout bounds each remote fetch.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithDebounce sets the coalescing window of file change events.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for dataset watcher errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// FindConfig looks upwards from startDir for a config file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// --- Factory ---

// New creates a service for the configured dataset. Call Reload to load it.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// --- Documents ---

// Generate assembles the plain-text document described by st.
func Generate(st core.State) string {
	return assembler.FromState(st).Text()
}
