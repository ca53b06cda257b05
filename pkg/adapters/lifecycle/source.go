// Package lifecycle exposes dataset change events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/proposal/pkg/core"
)

type datasetSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource wraps a dataset event channel, such as the one returned by
// core.Service.Watch, into a lifecycle.Source.
//
// A reload reads the whole dataset, so changes that arrive while the consumer
// is still busy collapse into the most recent one.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &datasetSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *datasetSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the input channel closes, then
// closes the output channel. A change still pending when the input closes is
// delivered first.
func (s *datasetSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)

		in := s.events
		var pending *core.Event
		for in != nil || pending != nil {
			var send chan<- lifecycle.Event
			var next lifecycle.Event
			if pending != nil {
				send, next = s.out, *pending
			}

			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-in:
				if !ok {
					in = nil
					continue
				}
				pending = &e
			case send <- next:
				pending = nil
			}
		}
		return nil
	})
	return nil
}
