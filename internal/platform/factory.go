package platform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aretw0/proposal/pkg/adapters/fs"
	"github.com/aretw0/proposal/pkg/adapters/remote"
	"github.com/aretw0/proposal/pkg/core"
)

// New creates a service for the configured dataset. Nothing is loaded yet:
// call Reload on the result.
//
//	svc, err := platform.New(platform.WithDataset("data/tools.csv"))
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	src := o.source
	if src == nil {
		var err error
		src, err = newSource(o)
		if err != nil {
			return nil, err
		}
	}

	return core.NewService(src, o.logger), nil
}

// newSource picks the adapter from the dataset scheme: http and https are
// remote, file and plain paths are local.
func newSource(o *options) (core.Source, error) {
	uri := strings.TrimSpace(o.dataset)
	if uri == "" {
		return nil, core.ErrNoSource
	}

	scheme := ""
	if u, err := url.Parse(uri); err == nil && len(u.Scheme) > 1 {
		// Single-letter schemes are Windows drive letters.
		scheme = strings.ToLower(u.Scheme)
	}

	switch scheme {
	case "http", "https":
		return remote.NewSource(remote.Config{
			URL:     uri,
			Client:  o.client,
			Timeout: o.timeout,
			Logger:  o.logger,
		}), nil
	case "", "file":
		path := uri
		if scheme == "file" {
			u, _ := url.Parse(uri)
			path = u.Path
		}
		return fs.NewSource(fs.Config{
			Path:         path,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
			Debounce:     o.debounce,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported dataset scheme %q", scheme)
	}
}
