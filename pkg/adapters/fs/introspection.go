package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// SourceState exposes internal state for observability.
type SourceState struct {
	Path          string     `json:"path"`
	Fetches       int        `json:"fetches"`
	LastFetch     *time.Time `json:"last_fetch,omitempty"`
	WatcherActive bool       `json:"watcher_active"`
	Debounce      string     `json:"debounce"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SourceState{
		Path:          s.Path,
		Fetches:       s.fetches,
		LastFetch:     s.lastFetch,
		WatcherActive: s.watcherActive,
		Debounce:      s.config.Debounce.String(),
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "fs-source"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)

func (s *Source) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Source) recordFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.fetches++
	s.lastFetch = &now
}
