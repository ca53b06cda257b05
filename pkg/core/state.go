package core

import "fmt"

// StatusKind classifies the outcome of the latest dataset load.
type StatusKind string

const (
	StatusIdle    StatusKind = "idle"
	StatusLoading StatusKind = "loading"
	StatusLoaded  StatusKind = "loaded"
	StatusEmpty   StatusKind = "empty"
	StatusFailed  StatusKind = "failed"
)

// Status is the user-facing load state.
type Status struct {
	Kind   StatusKind `json:"kind"`
	Source string     `json:"source,omitempty"`
	Count  int        `json:"count"`
	Err    string     `json:"error,omitempty"`
}

// Message renders the status line shown above the tool list.
func (s Status) Message() string {
	name := s.Source
	if name == "" {
		name = "tools.csv"
	}
	switch s.Kind {
	case StatusLoading:
		return fmt.Sprintf("正在載入 %s…", name)
	case StatusLoaded:
		return fmt.Sprintf("✅ 已載入 %d 筆工具", s.Count)
	case StatusEmpty:
		return fmt.Sprintf("⚠️ %s 已載入，但資料為空（請確認 CSV 內容與欄位名稱）", name)
	case StatusFailed:
		return "❌ " + s.Err
	default:
		return ""
	}
}

// State is one snapshot of a proposal session.
// Transitions return a new State; the receiver is never modified, so a State can be
// shared between goroutines once built.
type State struct {
	Type     DocType
	Records  []Record
	Selected Selection
	Query    string
	Fields   Fields
	Status   Status
}

// NewState returns the initial session state.
func NewState() State {
	return State{Type: DefaultDocType, Selected: NewSelection()}
}

// WithRecords replaces the record set wholesale. The selection is kept as is;
// IDs missing from the new set simply stop matching.
func (s State) WithRecords(records []Record) State {
	s.Records = append([]Record(nil), records...)
	return s
}

func (s State) WithStatus(st Status) State {
	s.Status = st
	return s
}

// WithType switches the active document type. Invalid types fall back to the default.
func (s State) WithType(t DocType) State {
	if !t.Valid() {
		t = DefaultDocType
	}
	s.Type = t
	return s
}

func (s State) Toggle(id string, on bool) State {
	s.Selected = s.Selected.Toggle(id, on)
	return s
}

func (s State) WithQuery(q string) State {
	s.Query = q
	return s
}

func (s State) WithFields(f Fields) State {
	s.Fields = f
	return s
}

// Visible returns the records matching the current query.
func (s State) Visible() []Record {
	return Filter(s.Records, s.Query)
}

// SelectedRecords returns the selected records in dataset order.
func (s State) SelectedRecords() []Record {
	return s.Selected.Of(s.Records)
}
