package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	SourceType string     `json:"source_type"`
	Source     string     `json:"source"`
	Status     Status     `json:"status"`
	Records    int        `json:"records"`
	Loads      int        `json:"loads"`
	LastLoad   *time.Time `json:"last_load,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sourceType := "unknown"
	name := ""
	if s.source != nil {
		sourceType = "source"
		name = s.source.Name()
		if comp, ok := s.source.(introspection.Component); ok {
			sourceType = comp.ComponentType()
		}
	}

	return ServiceState{
		SourceType: sourceType,
		Source:     name,
		Status:     s.status,
		Records:    len(s.records),
		Loads:      s.loads,
		LastLoad:   s.lastLoad,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
