package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/aretw0/proposal/pkg/adapters/lifecycle"
	"github.com/aretw0/proposal/pkg/core"
)

func TestSource_ForwardsAndCloses(t *testing.T) {
	in := make(chan core.Event, 1)
	src := adapter.NewSource(in)

	require.NoError(t, src.Start(context.Background()))

	in <- core.Event{Type: core.EventModify, ID: "tools.csv"}
	select {
	case e := <-src.Events():
		assert.Equal(t, "MODIFY tools.csv", e.String())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for forwarded event")
	}

	close(in)
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "output must close when input closes")
	case <-time.After(time.Second):
		t.Fatal("output channel was not closed")
	}
}

func TestSource_CoalescesBurst(t *testing.T) {
	in := make(chan core.Event, 3)
	for i := 1; i <= 3; i++ {
		in <- core.Event{Type: core.EventModify, ID: "tools.csv", Timestamp: int64(i)}
	}
	close(in)

	src := adapter.NewSource(in)
	require.NoError(t, src.Start(context.Background()))
	require.Eventually(t, func() bool { return len(in) == 0 }, time.Second, 5*time.Millisecond)

	select {
	case e := <-src.Events():
		ev, ok := e.(core.Event)
		require.True(t, ok)
		assert.Equal(t, int64(3), ev.Timestamp, "only the latest change of a burst is delivered")
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for coalesced event")
	}

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "output must close after the pending change")
	case <-time.After(time.Second):
		t.Fatal("output channel was not closed")
	}
}

func TestSource_StopsOnCancel(t *testing.T) {
	in := make(chan core.Event)
	src := adapter.NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("output channel was not closed after cancel")
	}
}
