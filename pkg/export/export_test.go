package export_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/proposal/pkg/export"
)

var fixedNow = time.Date(2024, 1, 31, 9, 45, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestDownloadName(t *testing.T) {
	assert.Equal(t, "proposal_20240131-094500.txt", export.DownloadName(fixedNow))
}

func TestCopy_Clipboard(t *testing.T) {
	var got string
	e := export.New(export.Config{
		Dir:       t.TempDir(),
		Clipboard: func(s string) error { got = s; return nil },
		Now:       clock,
	})

	res, err := e.Copy(context.Background(), "文件")
	require.NoError(t, err)
	assert.Equal(t, export.MethodClipboard, res.Method)
	assert.Equal(t, "文件", got)
}

func TestCopy_FallsBackToDownload(t *testing.T) {
	dir := t.TempDir()
	e := export.New(export.Config{
		Dir:       dir,
		Clipboard: func(string) error { return errors.New("permission denied") },
		Now:       clock,
	})

	res, err := e.Copy(context.Background(), "line1\nline2")
	require.NoError(t, err)
	assert.Equal(t, export.MethodDownload, res.Method)
	assert.Equal(t, filepath.Join(dir, "proposal_20240131-094500.txt"), res.Path)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", string(data))
}

func TestCopy_NoticeWhenBothFail(t *testing.T) {
	// A regular file where the download directory should be makes SaveFile fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	clipErr := errors.New("permission denied")
	e := export.New(export.Config{
		Dir:       filepath.Join(blocker, "out"),
		Clipboard: func(string) error { return clipErr },
		Now:       clock,
	})

	_, err := e.Copy(context.Background(), "text")
	require.Error(t, err)

	var notice *export.Notice
	require.ErrorAs(t, err, &notice)
	assert.NotEmpty(t, notice.Message)
	assert.ErrorIs(t, err, clipErr)
}

func TestDownload_CancelledContext(t *testing.T) {
	e := export.New(export.Config{Dir: t.TempDir(), Now: clock})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Download(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}
