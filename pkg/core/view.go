package core

const (
	coreSummaryLen  = 90
	painsSummaryLen = 120

	noMatchNotice = "找不到符合的工具（試試短一點的關鍵字）"
)

// ViewItem describes one row of the tool list.
type ViewItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Core     string `json:"core"`
	Pains    string `json:"pains"`
	Category string `json:"category,omitempty"`
	Checked  bool   `json:"checked"`
}

// TypeOption is one entry of the document type selector.
type TypeOption struct {
	Value    DocType `json:"value"`
	Label    string  `json:"label"`
	Selected bool    `json:"selected"`
}

// View is the display description derived from a State.
type View struct {
	Status        string       `json:"status"`
	Query         string       `json:"query"`
	Types         []TypeOption `json:"types"`
	Items         []ViewItem   `json:"items"`
	Notice        string       `json:"notice,omitempty"`
	SelectedCount int          `json:"selected_count"`
}

// Render derives the view for s. Calling it twice on the same state yields the
// same view.
func Render(s State) View {
	v := View{
		Status:        s.Status.Message(),
		Query:         s.Query,
		Items:         []ViewItem{},
		SelectedCount: len(s.SelectedRecords()),
	}

	for _, t := range DocTypes() {
		v.Types = append(v.Types, TypeOption{Value: t, Label: t.Label(), Selected: t == s.Type})
	}

	for _, r := range s.Visible() {
		v.Items = append(v.Items, ViewItem{
			ID:       r.ID,
			Name:     r.Name,
			Core:     Shorten(r.Core, coreSummaryLen),
			Pains:    Shorten(r.Pains, painsSummaryLen),
			Category: r.Category,
			Checked:  s.Selected.Has(r.ID),
		})
	}

	if len(v.Items) == 0 && s.Status.Kind != StatusFailed {
		v.Notice = noMatchNotice
	}
	return v
}

// Shorten cuts s to at most n runes, marking the cut with an ellipsis.
func Shorten(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
