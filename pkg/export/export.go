// Package export delivers a generated document to the clipboard or to a file.
//
// Export is best effort: a clipboard refusal falls back to a downloaded file,
// and only when both paths fail does the caller receive a *Notice, which is
// meant to be shown to the user rather than treated as fatal.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/aretw0/proposal/pkg/adapters/fs"
)

// Method identifies how a document was exported.
type Method string

const (
	MethodClipboard Method = "clipboard"
	MethodDownload  Method = "download"
)

// Result describes a successful export.
type Result struct {
	Method Method `json:"method"`
	Path   string `json:"path,omitempty"` // set for downloads
}

// Notice is a non-fatal, user-facing export failure.
type Notice struct {
	Message string
	Err     error
}

func (n *Notice) Error() string {
	if n.Err == nil {
		return n.Message
	}
	return n.Message + ": " + n.Err.Error()
}

func (n *Notice) Unwrap() error { return n.Err }

// DownloadName returns the file name used for a document exported at now,
// e.g. "proposal_20240131-094500.txt".
func DownloadName(now time.Time) string {
	return "proposal_" + now.Format("20060102-150405") + ".txt"
}

// Config holds the exporter configuration.
type Config struct {
	Dir       string             // download directory, default "."
	Clipboard func(string) error // default clipboard.WriteAll
	Now       func() time.Time   // default time.Now
	Logger    *slog.Logger
}

// Exporter writes documents out of the session.
type Exporter struct {
	config Config
}

// New creates an Exporter, filling in defaults.
func New(config Config) *Exporter {
	if config.Dir == "" {
		config.Dir = "."
	}
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{config: config}
}

// Copy puts text on the clipboard, falling back to Download when the clipboard
// is unavailable. The error is a *Notice when both fail.
func (e *Exporter) Copy(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	clipErr := e.config.Clipboard(text)
	if clipErr == nil {
		e.config.Logger.Debug("document copied", "bytes", len(text))
		return Result{Method: MethodClipboard}, nil
	}
	e.config.Logger.Warn("clipboard unavailable, falling back to download", "error", clipErr)

	res, err := e.Download(ctx, text)
	if err != nil {
		return Result{}, &Notice{
			Message: "無法複製也無法下載，請手動選取文字複製",
			Err:     fmt.Errorf("clipboard: %w; download: %w", clipErr, err),
		}
	}
	return res, nil
}

// Download saves text into the configured directory under DownloadName.
func (e *Exporter) Download(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	path := filepath.Join(e.config.Dir, DownloadName(e.config.Now()))
	if err := fs.SaveFile(path, []byte(text)); err != nil {
		return Result{}, fmt.Errorf("failed to save %s: %w", path, err)
	}

	e.config.Logger.Info("document downloaded", "path", path)
	return Result{Method: MethodDownload, Path: path}, nil
}
