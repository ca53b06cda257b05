// Package fs implements dataset retrieval and exports on the local filesystem.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/proposal/pkg/core"
)

// Config holds the configuration for the filesystem source.
type Config struct {
	Path         string        // dataset file, e.g. "data/tools.csv"
	Logger       *slog.Logger  // optional
	ErrorHandler func(error)   // optional, receives watcher errors
	Debounce     time.Duration // coalescing window for change events, default 50ms
}

// Source implements core.Source and core.Watchable for a dataset file.
// The file is read from disk on every Fetch; nothing is cached.
type Source struct {
	Path   string
	config Config

	mu            sync.RWMutex
	fetches       int
	lastFetch     *time.Time
	watcherActive bool
}

// NewSource creates a new filesystem-backed dataset source.
func NewSource(config Config) *Source {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Source{
		Path:   config.Path,
		config: config,
	}
}

// Name returns the base name of the dataset file.
func (s *Source) Name() string {
	return filepath.Base(s.Path)
}

// Fetch reads the whole dataset file.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("%s 載入失敗：%w", s.Name(), err)
	}

	s.recordFetch()
	s.config.Logger.Debug("dataset read", "path", s.Path, "bytes", len(data))
	return string(data), nil
}

// Watch starts a watch worker and returns its event stream.
// The channel is closed once ctx is done.
func (s *Source) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 8)
	w := newWatchWorker(s, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-w.done
		close(events)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.config.Logger.Error("watch bridge failed", "error", err)
	}))
	return events, nil
}

var _ core.Source = (*Source)(nil)
var _ core.Watchable = (*Source)(nil)
