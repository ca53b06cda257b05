package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/proposal/pkg/core"
)

// run executes the root command against a temp config pointing at data.
func run(t *testing.T, data string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "tools.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte(data), 0o644))
	confPath := filepath.Join(dir, "proposal.yaml")
	require.NoError(t, os.WriteFile(confPath, []byte("dataset: "+dataPath+"\ndownload_dir: "+dir+"\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", confPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

const sample = "工具ID,工具名稱,核心功能,性質分類\nA01,呼吸急救,三分鐘降溫,情緒\nB02,修復儀式,衝突後修復,關係\n"

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, sample, "generate", "--type", "activity", "--audience", "老師", "--select", "B02")
	require.NoError(t, err)

	assert.Contains(t, out, "【提案類型】活動")
	assert.Contains(t, out, "【對象】老師")
	assert.Contains(t, out, "【主工具】修復儀式（B02）")
}

func TestToolsCommand(t *testing.T) {
	out, err := run(t, sample, "tools", "--query", "關係")
	require.NoError(t, err)

	assert.Contains(t, out, "✅ 已載入 2 筆工具")
	assert.Contains(t, out, "B02")
	assert.NotContains(t, out, "A01")
}

func TestToolsCommand_EmptyDataset(t *testing.T) {
	_, err := run(t, "工具ID,工具名稱\n", "tools", "--query", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "資料為空")
}

func TestGenerateCommand_EmptyDataset(t *testing.T) {
	out, err := run(t, "工具ID,工具名稱\n", "generate", "--type", "talk")
	require.NoError(t, err)

	assert.Contains(t, out, "【提案類型】演講")
	assert.Contains(t, out, "尚未選工具")
}

func TestGenerateCommand_UnknownType(t *testing.T) {
	_, err := run(t, sample, "generate", "--type", "webinar")
	assert.ErrorIs(t, err, core.ErrUnknownDocType)
}

func TestReadFieldsAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte("organization: 台北市立國小\naudience: 家長\npains: 情緒失控\n"), 0o644))

	f, err := readFields(path)
	require.NoError(t, err)
	assert.Equal(t, "台北市立國小", f.Organization)

	merged := mergeFields(f, core.Fields{Audience: "老師", Duration: "90 分鐘"})
	assert.Equal(t, core.Fields{
		Organization: "台北市立國小",
		Audience:     "老師",
		Duration:     "90 分鐘",
		Pains:        "情緒失控",
	}, merged)
}
