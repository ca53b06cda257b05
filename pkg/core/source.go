package core

import "context"

// Source defines the contract for retrieving the raw dataset text.
// Implementations must not serve a cached copy: every Fetch reflects the
// current state of the underlying resource.
type Source interface {
	// Name identifies the dataset in status messages (e.g. "tools.csv").
	Name() string

	// Fetch retrieves the full dataset text.
	Fetch(ctx context.Context) (string, error)
}

// Watchable defines an interface for sources that can notify about changes.
type Watchable interface {
	// Watch emits an Event every time the dataset changes, until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
