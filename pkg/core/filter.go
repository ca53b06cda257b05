package core

import "strings"

// Matches reports whether the record should be listed for query.
// Matching is a case-insensitive substring search over id, name, core, pains and
// category. A blank query matches every record.
func Matches(r Record, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{r.ID, r.Name, r.Core, r.Pains, r.Category}, " "))
	return strings.Contains(haystack, strings.ToLower(q))
}

// Filter keeps the records matching query, preserving order.
func Filter(records []Record, query string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}
