package server

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// NoStore is sent for assets that must always be fetched fresh.
	NoStore = "no-store"
	// LongLived is sent for every other static asset.
	LongLived = "public, max-age=86400"
)

// CachePolicy decides the Cache-Control header of static assets. Paths
// matching one of the fresh patterns are never cached; the dataset is the
// usual member of that set.
type CachePolicy struct {
	fresh []string
}

// NewCachePolicy validates the doublestar patterns.
func NewCachePolicy(patterns []string) (*CachePolicy, error) {
	p := &CachePolicy{}
	for _, pat := range patterns {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid cache pattern %q", pat)
		}
		p.fresh = append(p.fresh, pat)
	}
	return p, nil
}

// IsFresh reports whether name, a slash-separated path relative to the
// static root, must bypass caches.
func (p *CachePolicy) IsFresh(name string) bool {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	for _, pat := range p.fresh {
		if ok, _ := doublestar.Match(pat, name); ok {
			return true
		}
	}
	return false
}

// Header returns the Cache-Control value for name.
func (p *CachePolicy) Header(name string) string {
	if p.IsFresh(name) {
		return NoStore
	}
	return LongLived
}
