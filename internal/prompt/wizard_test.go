package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/proposal/pkg/core"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	infoMessages []string
	multiOptions [][]string
	multiDefault [][]int
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return 0, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multi-select scripted")
	}
	s.multiOptions = append(s.multiOptions, cfg.Options)
	s.multiDefault = append(s.multiDefault, cfg.Defaults)
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type staticSession struct{ st core.State }

func (s staticSession) Session() core.State { return s.st }

func session() staticSession {
	st := core.NewState().WithRecords([]core.Record{
		{ID: "A01", Name: "呼吸急救", Category: "情緒"},
		{ID: "A02", Name: "情緒溫度計", Category: "情緒"},
		{ID: "B01", Name: "修復儀式", Category: "關係"},
	}).WithStatus(core.Status{Kind: core.StatusLoaded, Count: 3})
	return staticSession{st: st}
}

func TestRunWizard(t *testing.T) {
	d := &stubDriver{
		selectIdx: []int{1},
		inputs: []string{
			" 台北市立國小 ", "家長", "90 分鐘", "40", "", "情緒失控",
			// The second search matches nothing and is asked again.
			"情緒", "nothing", "關係",
		},
		multiIdx: [][]int{{1}, {0}},
		confirm:  []bool{true, false},
	}

	a, err := RunWizard(context.Background(), d, session())
	require.NoError(t, err)

	assert.Equal(t, core.Course, a.Type)
	assert.Equal(t, "台北市立國小", a.Fields.Organization)
	assert.Equal(t, "40", a.Fields.Headcount)
	assert.Equal(t, []string{"A02", "B01"}, a.Selected)

	assert.Equal(t, []string{"呼吸急救（A01）", "情緒溫度計（A02）"}, d.multiOptions[0])
	assert.Equal(t, []string{"修復儀式（B01）"}, d.multiOptions[1])
	assert.Contains(t, d.infoMessages, "✅ 已載入 3 筆工具")
	assert.Contains(t, d.infoMessages, "找不到符合的工具（試試短一點的關鍵字）")
}

func TestRunWizard_UntickAndDefaults(t *testing.T) {
	d := &stubDriver{
		selectIdx: []int{0},
		inputs:    []string{"", "", "", "", "", "", "", ""},
		multiIdx:  [][]int{{0, 2}, {2}},
		confirm:   []bool{true, false},
	}

	a, err := RunWizard(context.Background(), d, session())
	require.NoError(t, err)

	assert.Equal(t, core.Talk, a.Type)
	assert.Equal(t, []int{0, 2}, d.multiDefault[1], "earlier ticks are offered as defaults")
	assert.Equal(t, []string{"B01"}, a.Selected)
}

func TestRunWizard_EmptyDataset(t *testing.T) {
	st := core.NewState().WithStatus(core.Status{Kind: core.StatusEmpty, Source: "tools.csv"})
	d := &stubDriver{
		selectIdx: []int{2},
		inputs:    []string{"", "", "", "", "", ""},
	}

	a, err := RunWizard(context.Background(), d, staticSession{st: st})
	require.NoError(t, err)
	assert.Equal(t, core.Activity, a.Type)
	assert.Empty(t, a.Selected)
	assert.Equal(t, 0, d.multiPos)
}

func TestRunWizard_Aborted(t *testing.T) {
	d := &abortingDriver{stubDriver: &stubDriver{selectIdx: []int{0}}}
	_, err := RunWizard(context.Background(), d, session())
	assert.ErrorIs(t, err, ErrAborted)
}

type abortingDriver struct{ *stubDriver }

func (a *abortingDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}

func TestAnswersApply(t *testing.T) {
	a := Answers{Type: core.Activity, Fields: core.Fields{Audience: "老師"}, Selected: []string{"B01"}}
	st := a.Apply(session().Session())

	assert.Equal(t, core.Activity, st.Type)
	assert.Equal(t, "老師", st.Fields.Audience)
	require.Len(t, st.SelectedRecords(), 1)
	assert.Equal(t, "B01", st.SelectedRecords()[0].ID)
}

func TestIndexHelpers(t *testing.T) {
	opts := []string{"a", "b", "c"}
	assert.Equal(t, 1, indexOf(opts, "b"))
	assert.Equal(t, -1, indexOf(opts, "z"))
	assert.Equal(t, []int{0, 2}, indicesOf(opts, []string{"c", "a"}))
	assert.Equal(t, []string{"a", "c"}, defaultsFromIndices(opts, []int{0, 9, 2}))
}
