package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/proposal/pkg/adapters/remote"
	"github.com/aretw0/proposal/pkg/core"
)

func TestSource_FetchBustsCaches(t *testing.T) {
	var gotQuery, gotCache string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("v")
		gotCache = r.Header.Get("Cache-Control")
		_, _ = w.Write([]byte("id,name\nA01,Alpha\n"))
	}))
	defer srv.Close()

	now := time.UnixMilli(1700000000123)
	src := remote.NewSource(remote.Config{
		URL: srv.URL + "/data/tools.csv?lang=zh",
		Now: func() time.Time { return now },
	})

	text, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id,name\nA01,Alpha\n", text)
	assert.Equal(t, "1700000000123", gotQuery)
	assert.Equal(t, "no-store", gotCache)
	assert.Equal(t, "tools.csv", src.Name())
}

func TestSource_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	src := remote.NewSource(remote.Config{URL: srv.URL + "/data/tools.csv"})
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "tools.csv")
}

func TestSource_ServiceReloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := core.NewService(remote.NewSource(remote.Config{URL: srv.URL + "/tools.csv"}), nil)
	st, err := svc.Reload(context.Background())
	require.ErrorIs(t, err, core.ErrRetrieval)
	assert.Equal(t, core.StatusFailed, st.Kind)
	assert.Empty(t, svc.Records())
}
