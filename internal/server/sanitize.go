package server

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aretw0/proposal/pkg/core"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plain strips every tag from dataset text and returns it unescaped, ready for
// html/template to escape once. Only the HTML page uses it; the JSON API and
// the generated document keep the dataset text unchanged.
func plain(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(trimmed)))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func sanitizeItems(items []core.ViewItem) []core.ViewItem {
	out := make([]core.ViewItem, len(items))
	for i, it := range items {
		it.Name = plain(it.Name)
		it.Core = plain(it.Core)
		it.Pains = plain(it.Pains)
		it.Category = plain(it.Category)
		out[i] = it
	}
	return out
}
