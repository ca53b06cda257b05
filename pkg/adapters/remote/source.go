// Package remote retrieves the dataset over HTTP.
package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/aretw0/introspection"

	"github.com/aretw0/proposal/pkg/core"
)

// Config holds the configuration for the HTTP source.
type Config struct {
	URL     string
	Client  *http.Client     // optional, defaults to a client with Timeout
	Timeout time.Duration    // default 10s
	Logger  *slog.Logger     // optional
	Now     func() time.Time // optional, used for the cache-busting parameter
}

// Source fetches the dataset from a URL. Every request carries a cache-busting
// "v" query parameter and asks intermediaries not to store the response.
type Source struct {
	config Config
}

// NewSource creates a new HTTP dataset source.
func NewSource(config Config) *Source {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Client == nil {
		config.Client = &http.Client{Timeout: config.Timeout}
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Source{config: config}
}

// Name returns the last path segment of the URL.
func (s *Source) Name() string {
	u, err := url.Parse(s.config.URL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return s.config.URL
	}
	return path.Base(u.Path)
}

// Fetch performs a GET and returns the body. Non-2xx responses are errors.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	target, err := s.bust()
	if err != nil {
		return "", fmt.Errorf("%s 載入失敗：%w", s.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%s 載入失敗：%w", s.Name(), err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.config.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s 載入失敗：%w", s.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s 載入失敗：HTTP %d", s.Name(), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s 載入失敗：%w", s.Name(), err)
	}

	s.config.Logger.Debug("dataset fetched", "url", target, "bytes", len(body))
	return string(body), nil
}

func (s *Source) bust() (string, error) {
	u, err := url.Parse(s.config.URL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(s.config.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "remote-source"
}

var _ core.Source = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)
