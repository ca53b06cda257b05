package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Service owns the current record set and keeps it in sync with a Source.
type Service struct {
	source Source
	logger *slog.Logger

	mu       sync.RWMutex
	records  []Record
	status   Status
	loads    int
	lastLoad *time.Time
}

// NewService creates a new Service reading from source.
// A nil logger discards log output.
func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	name := ""
	if source != nil {
		name = source.Name()
	}
	return &Service{
		source: source,
		logger: logger,
		status: Status{Kind: StatusIdle, Source: name},
	}
}

// Reload fetches the dataset and replaces the record set wholesale.
//
// A retrieval failure clears the record set and returns an error wrapping
// ErrRetrieval together with a StatusFailed status. A dataset without usable
// records is not an error: it yields StatusEmpty. Concurrent reloads are not
// cancelled; whichever completes last defines the record set.
func (s *Service) Reload(ctx context.Context) (Status, error) {
	if s.source == nil {
		st := Status{Kind: StatusFailed, Err: ErrNoSource.Error()}
		s.store(nil, st)
		return st, ErrNoSource
	}

	name := s.source.Name()
	s.setStatus(Status{Kind: StatusLoading, Source: name})
	s.logger.Debug("loading dataset", "source", name)

	text, err := s.source.Fetch(ctx)
	if err != nil {
		st := Status{Kind: StatusFailed, Source: name, Err: err.Error()}
		s.store(nil, st)
		s.logger.Error("dataset load failed", "source", name, "error", err)
		return st, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}

	records := ParseRecords(text)
	st := Status{Kind: StatusLoaded, Source: name, Count: len(records)}
	if len(records) == 0 {
		st.Kind = StatusEmpty
		s.logger.Warn("dataset has no usable records", "source", name)
	} else {
		s.logger.Info("dataset loaded", "source", name, "records", len(records))
	}
	s.store(records, st)
	return st, nil
}

func (s *Service) store(records []Record, st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.records = records
	s.status = st
	s.loads++
	s.lastLoad = &now
}

func (s *Service) setStatus(st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = st
}

// Records returns a copy of the current record set.
func (s *Service) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.records...)
}

// Status returns the outcome of the latest load.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Session returns a fresh session state seeded with the current records and status.
func (s *Service) Session() State {
	return s.Apply(NewState())
}

// Apply refreshes the records and status of an existing session state, keeping
// the user's type, selection, query and fields.
func (s *Service) Apply(st State) State {
	return st.WithRecords(s.Records()).WithStatus(s.Status())
}

// Watch observes dataset changes if the source supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.source.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx)
}
