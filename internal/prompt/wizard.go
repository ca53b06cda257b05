package prompt

import (
	"context"
	"fmt"

	"github.com/aretw0/proposal/pkg/core"
)

// Answers is what the wizard collected.
type Answers struct {
	Type     core.DocType
	Fields   core.Fields
	Selected []string
}

// Apply sets the answers on a session state.
func (a Answers) Apply(st core.State) core.State {
	st = st.WithType(a.Type).WithFields(a.Fields)
	st.Selected = core.NewSelection(a.Selected...)
	return st
}

// RecordSource is the part of core.Service the wizard reads.
type RecordSource interface {
	Session() core.State
}

const pageSize = 12

// RunWizard asks for the document type, the free-text fields and the tools to
// include. Tool picking repeats search then multi-select until the user is done;
// ticks on tools hidden by a later search are kept.
func RunWizard(ctx context.Context, d Driver, src RecordSource) (Answers, error) {
	st := src.Session()
	if msg := st.Status.Message(); msg != "" {
		if err := d.Info(ctx, msg); err != nil {
			return Answers{}, err
		}
	}

	types := core.DocTypes()
	labels := make([]string, len(types))
	def := 0
	for i, t := range types {
		labels[i] = t.Label()
		if t == core.DefaultDocType {
			def = i
		}
	}
	idx, err := d.Select(ctx, SelectConfig{Message: "提案類型", Options: labels, DefaultIndex: def})
	if err != nil {
		return Answers{}, err
	}
	if idx >= 0 && idx < len(types) {
		st = st.WithType(types[idx])
	}

	fields, err := askFields(ctx, d)
	if err != nil {
		return Answers{}, err
	}
	st = st.WithFields(fields)

	if len(st.Records) > 0 {
		if st, err = pickTools(ctx, d, st); err != nil {
			return Answers{}, err
		}
	}

	return Answers{Type: st.Type, Fields: st.Fields, Selected: st.Selected.IDs()}, nil
}

func askFields(ctx context.Context, d Driver) (core.Fields, error) {
	var f core.Fields
	questions := []struct {
		msg string
		dst *string
	}{
		{"單位／機構", &f.Organization},
		{"對象", &f.Audience},
		{"時長", &f.Duration},
		{"人數", &f.Headcount},
		{"提案名稱（可留白）", &f.Topic},
		{"主要痛點／關鍵字", &f.Pains},
	}
	for _, q := range questions {
		v, err := d.Input(ctx, InputConfig{Message: q.msg})
		if err != nil {
			return core.Fields{}, err
		}
		*q.dst = v
	}
	return f.Trimmed(), nil
}

func pickTools(ctx context.Context, d Driver, st core.State) (core.State, error) {
	for {
		q, err := d.Input(ctx, InputConfig{Message: "搜尋工具", Help: "留白顯示全部"})
		if err != nil {
			return st, err
		}
		st = st.WithQuery(q)

		view := core.Render(st)
		if len(view.Items) == 0 {
			if err := d.Info(ctx, view.Notice); err != nil {
				return st, err
			}
			continue
		}

		options := make([]string, len(view.Items))
		var defaults []int
		for i, it := range view.Items {
			options[i] = fmt.Sprintf("%s（%s）", it.Name, it.ID)
			if it.Checked {
				defaults = append(defaults, i)
			}
		}
		picked, err := d.MultiSelect(ctx, SelectConfig{
			Message:  "選擇工具",
			Options:  options,
			Defaults: defaults,
			PageSize: pageSize,
		})
		if err != nil {
			return st, err
		}

		chosen := make(map[int]bool, len(picked))
		for _, i := range picked {
			chosen[i] = true
		}
		for i, it := range view.Items {
			st = st.Toggle(it.ID, chosen[i])
		}

		more, err := d.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("已選 %d 個，繼續搜尋其他工具？", len(st.SelectedRecords()))})
		if err != nil {
			return st, err
		}
		if !more {
			return st.WithQuery(""), nil
		}
	}
}
