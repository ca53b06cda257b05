// Package core holds the proposal domain: tool records, selections, document types
// and the session state the surfaces operate on.
package core

import (
	"strings"

	"github.com/aretw0/proposal/pkg/tabular"
)

// Record is one tool parsed from the dataset.
// Only ID and Name are required; every other field is free-form display text.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Core      string `json:"core,omitempty"`
	Pains     string `json:"pains,omitempty"`
	Chapter   string `json:"chapter,omitempty"`
	Steps     string `json:"steps,omitempty"`
	Pouch     string `json:"pouch,omitempty"`
	Link      string `json:"link,omitempty"`
	Category  string `json:"category,omitempty"`
	VideoName string `json:"video_name,omitempty"`
	VideoLink string `json:"video_link,omitempty"`
}

// Valid reports whether the record carries both an identifier and a name.
func (r Record) Valid() bool {
	return r.ID != "" && r.Name != ""
}

// columnAliases lists, per record field, the dataset headers that feed it.
// The first non-empty column wins.
var columnAliases = struct {
	ID, Name, Core, Pains, Chapter, Steps, Pouch, Link, Category, VideoName, VideoLink []string
}{
	ID:        []string{"工具ID", "id"},
	Name:      []string{"工具名稱", "name"},
	Core:      []string{"核心功能", "core", "description"},
	Pains:     []string{"適用對象/痛點", "pains", "audience"},
	Chapter:   []string{"對應篇章", "chapter"},
	Steps:     []string{"操作步驟", "steps"},
	Pouch:     []string{"智多星錦囊", "pouch", "tips"},
	Link:      []string{"工具連結", "link", "url"},
	Category:  []string{"性質分類", "category"},
	VideoName: []string{"影片名稱", "video_name"},
	VideoLink: []string{"影片連結", "video_link"},
}

// RecordHeader is the canonical column order used when re-exporting records.
var RecordHeader = []string{
	"id", "name", "core", "pains", "chapter", "steps",
	"pouch", "link", "category", "video_name", "video_link",
}

func pick(row tabular.Row, names []string) string {
	for _, n := range names {
		if v := strings.TrimSpace(row[n]); v != "" {
			return v
		}
	}
	return ""
}

// RecordFromRow maps a parsed row onto a Record. Unknown columns are ignored.
func RecordFromRow(row tabular.Row) Record {
	a := columnAliases
	return Record{
		ID:        pick(row, a.ID),
		Name:      pick(row, a.Name),
		Core:      pick(row, a.Core),
		Pains:     pick(row, a.Pains),
		Chapter:   pick(row, a.Chapter),
		Steps:     pick(row, a.Steps),
		Pouch:     pick(row, a.Pouch),
		Link:      pick(row, a.Link),
		Category:  pick(row, a.Category),
		VideoName: pick(row, a.VideoName),
		VideoLink: pick(row, a.VideoLink),
	}
}

// Row converts the record back into RecordHeader columns.
func (r Record) Row() tabular.Row {
	return tabular.Row{
		"id":         r.ID,
		"name":       r.Name,
		"core":       r.Core,
		"pains":      r.Pains,
		"chapter":    r.Chapter,
		"steps":      r.Steps,
		"pouch":      r.Pouch,
		"link":       r.Link,
		"category":   r.Category,
		"video_name": r.VideoName,
		"video_link": r.VideoLink,
	}
}

// Records normalizes parsed rows, silently dropping the ones without ID or Name.
func Records(rows []tabular.Row) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		r := RecordFromRow(row)
		if !r.Valid() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ParseRecords parses dataset text straight into usable records.
func ParseRecords(text string) []Record {
	return Records(tabular.Parse(text))
}

// Fields are the free-text inputs of the proposal form.
type Fields struct {
	Organization string `json:"organization,omitempty" yaml:"organization"`
	Audience     string `json:"audience,omitempty" yaml:"audience"`
	Duration     string `json:"duration,omitempty" yaml:"duration"`
	Headcount    string `json:"headcount,omitempty" yaml:"headcount"`
	Topic        string `json:"topic,omitempty" yaml:"topic"`
	Pains        string `json:"pains,omitempty" yaml:"pains"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f Fields) Trimmed() Fields {
	return Fields{
		Organization: strings.TrimSpace(f.Organization),
		Audience:     strings.TrimSpace(f.Audience),
		Duration:     strings.TrimSpace(f.Duration),
		Headcount:    strings.TrimSpace(f.Headcount),
		Topic:        strings.TrimSpace(f.Topic),
		Pains:        strings.TrimSpace(f.Pains),
	}
}

// EventType represents the kind of change observed on a dataset source.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event notifies that the dataset behind a source changed.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
