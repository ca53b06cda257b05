package core

import (
	"sort"
	"strings"
)

// Selection is the set of record IDs marked for inclusion.
// It has no order of its own; Of orders by the record sequence.
// The zero value is an empty selection ready to use.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection builds a selection from ids, ignoring blanks and duplicates.
func NewSelection(ids ...string) Selection {
	s := Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected IDs, stale ones included.
func (s Selection) Len() int {
	return len(s.ids)
}

// Toggle returns a copy with id added (on) or removed (!on).
func (s Selection) Toggle(id string, on bool) Selection {
	next := Selection{ids: make(map[string]struct{}, len(s.ids)+1)}
	for k := range s.ids {
		next.ids[k] = struct{}{}
	}
	if id == "" {
		return next
	}
	if on {
		next.ids[id] = struct{}{}
	} else {
		delete(next.ids, id)
	}
	return next
}

// IDs returns the selected IDs sorted lexically.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Of returns the selected records in dataset order.
// IDs that no longer exist in records are inert.
func (s Selection) Of(records []Record) []Record {
	var out []Record
	for _, r := range records {
		if s.Has(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
