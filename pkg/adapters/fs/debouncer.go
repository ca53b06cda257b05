package fs

import (
	"sync"
	"time"

	"github.com/aretw0/proposal/pkg/core"
)

type pending struct {
	timer *time.Timer
	gen   uint64
}

// debouncer coalesces events per ID: only the last event of a burst is delivered,
// delay after the burst ends.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]pending
	gen     uint64
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		pending: make(map[string]pending),
	}
}

func (d *debouncer) add(e core.Event, fn func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if p, ok := d.pending[e.ID]; ok && p.timer.Stop() {
		d.wg.Done()
	}

	d.gen++
	gen := d.gen
	d.wg.Add(1)
	timer := time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if p, ok := d.pending[e.ID]; ok && p.gen == gen {
			delete(d.pending, e.ID)
		}
		d.mu.Unlock()

		fn(e)
	})
	d.pending[e.ID] = pending{timer: timer, gen: gen}
}

// stopAndWait drops pending events and waits up to timeout for callbacks already
// running to return.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for id, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, id)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
