package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/proposal/pkg/core"
)

// options holds the internal configuration for building a service.
type options struct {
	source       core.Source
	logger       *slog.Logger
	dataset      string
	client       *http.Client
	timeout      time.Duration
	debounce     time.Duration
	errorHandler func(error)
}

// Option defines a functional option for configuring the service.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		dataset: DefaultConfig().Dataset,
	}
}

// WithLogger sets the logger for the service and its source.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource injects a custom dataset source (e.g. a mock).
// When set, the dataset location is ignored.
func WithSource(src core.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithDataset sets the dataset location: a file path, a file:// URI or an
// http(s) URL.
func WithDataset(uri string) Option {
	return func(o *options) {
		o.dataset = uri
	}
}

// WithHTTPClient sets the client used for remote datasets.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithTimeout bounds each remote fetch.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithDebounce sets the coalescing window of file change events.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching a dataset file (e.g. permission denied).
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// FromConfig converts the relevant fields of cfg into options.
func FromConfig(cfg Config) []Option {
	var opts []Option
	if cfg.Dataset != "" {
		opts = append(opts, WithDataset(cfg.Dataset))
	}
	return opts
}
