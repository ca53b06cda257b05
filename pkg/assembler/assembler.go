// Package assembler turns a document type, the free-text form fields and the
// selected tools into the final proposal text.
//
// Assembly is a pure function of its inputs: the same type, fields and selection
// always produce byte-identical output. Nothing here can fail; missing optional
// values drop their line or fall back to a placeholder.
package assembler

import (
	"strings"

	"github.com/aretw0/proposal/pkg/core"
)

// Document is an assembled proposal.
type Document struct {
	Type  core.DocType `json:"type"`
	Title string       `json:"title"`
	Lines []string     `json:"lines"`
}

// Text joins the document lines with LF, without a trailing newline.
func (d Document) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Assemble returns the proposal text for t, f and the selected records.
// The first selected record is the primary tool, the rest are secondary.
func Assemble(t core.DocType, f core.Fields, selected []core.Record) string {
	return Build(t, f, selected).Text()
}

// FromState assembles the document described by a session state.
func FromState(st core.State) Document {
	return Build(st.Type, st.Fields, st.SelectedRecords())
}

// Build returns the structured document behind Assemble.
func Build(t core.DocType, f core.Fields, selected []core.Record) Document {
	if !t.Valid() {
		t = core.DefaultDocType
	}
	f = f.Trimmed()

	var primary *core.Record
	var secondary []core.Record
	if len(selected) > 0 {
		p := selected[0]
		primary = &p
		secondary = selected[1:]
	}

	title := f.Topic
	if title == "" {
		title = defaultTitle(t, f.Audience)
	}

	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }
	bullets := func(items []string) {
		for _, it := range items {
			add("- " + it)
		}
	}

	add(headTitle + title)
	if f.Organization != "" {
		add("（場域/單位：" + f.Organization + "）")
	}
	if info := timeInfo(f); info != "" {
		add(info)
	}
	add("")
	add(headType + t.Label())
	audience := f.Audience
	if audience == "" {
		audience = noAudience
	}
	add(headAudience + audience)
	if f.Pains != "" {
		add(headPains + f.Pains)
	}
	add("")
	add(headTools + toolLine(selected))

	if primary != nil {
		add("")
		add(headPrimary + label(*primary))
		if primary.Core != "" {
			add("- 核心功能：" + primary.Core)
		}
		if primary.Steps != "" {
			add("- 操作步驟：" + primary.Steps)
		}
		if primary.Link != "" {
			add("- 工具連結：" + primary.Link)
		}
		if len(secondary) > 0 {
			add(headSecondary)
			for _, r := range secondary {
				l := "- " + label(r)
				if r.Link != "" {
					l += "｜" + r.Link
				}
				add(l)
			}
		}
	}

	add("", headGoals)
	bullets(goals(t, f.Audience, f.Pains))

	add("", headFlow)
	bullets(flow(t, primary, secondary))

	add("", headDeliver)
	bullets(deliverables(t))

	add("", headRationale)
	bullets(rationale)

	add("", headClosing, closing)

	return Document{Type: t, Title: title, Lines: lines}
}

func timeInfo(f core.Fields) string {
	var parts []string
	if f.Duration != "" {
		parts = append(parts, "時長："+f.Duration)
	}
	if f.Headcount != "" {
		parts = append(parts, "人數："+f.Headcount)
	}
	return strings.Join(parts, "｜")
}

func label(r core.Record) string {
	return r.Name + "（" + r.ID + "）"
}

func toolLine(selected []core.Record) string {
	if len(selected) == 0 {
		return noToolSelected
	}
	names := make([]string, len(selected))
	for i, r := range selected {
		names[i] = label(r)
	}
	return strings.Join(names, listSep)
}
