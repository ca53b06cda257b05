package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/proposal"
	"github.com/aretw0/proposal/pkg/core"
	"github.com/aretw0/proposal/pkg/export"
)

var (
	genType     string
	genFields   core.Fields
	genFile     string
	genSelected []string
	genCopy     bool
	genDownload bool
	genDir      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a proposal from flags",
	Example: `  proposal generate --type course --audience 家長 --select A01,B02
  proposal generate --fields answers.yaml --select A01 --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := core.ParseDocType(genType)
		if err != nil {
			return err
		}

		fields := genFields
		if genFile != "" {
			fromFile, err := readFields(genFile)
			if err != nil {
				return err
			}
			fields = mergeFields(fromFile, genFields)
		}

		svc, err := openService(cmd.Context())
		if err != nil {
			return err
		}

		st := svc.Session().WithType(t).WithFields(fields)
		st.Selected = core.NewSelection(genSelected...)
		if missing := st.Selected.Len() - len(st.SelectedRecords()); missing > 0 {
			slog.Warn("some selected tools are not in the dataset", "missing", missing)
		}

		return emit(cmd.Context(), cmd.OutOrStdout(), proposal.Generate(st))
	},
}

// readFields loads free-text fields from a YAML file.
func readFields(path string) (core.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Fields{}, fmt.Errorf("failed to read fields %s: %w", path, err)
	}
	var f core.Fields
	if err := yaml.Unmarshal(data, &f); err != nil {
		return core.Fields{}, fmt.Errorf("failed to parse fields %s: %w", path, err)
	}
	return f, nil
}

// mergeFields returns base with every non-empty field of over applied.
func mergeFields(base, over core.Fields) core.Fields {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Organization, over.Organization)
	set(&base.Audience, over.Audience)
	set(&base.Duration, over.Duration)
	set(&base.Headcount, over.Headcount)
	set(&base.Topic, over.Topic)
	set(&base.Pains, over.Pains)
	return base
}

// emit prints the document and runs the requested exports. Export failures
// are reported but do not fail the command.
func emit(ctx context.Context, out io.Writer, doc string) error {
	if _, err := fmt.Fprintln(out, doc); err != nil {
		return err
	}
	if !genCopy && !genDownload {
		return nil
	}

	dir := genDir
	if dir == "" {
		dir = cfg.DownloadDir
	}
	exp := export.New(export.Config{Dir: dir, Logger: slog.Default()})

	var (
		res export.Result
		err error
	)
	if genCopy {
		res, err = exp.Copy(ctx, doc)
	} else {
		res, err = exp.Download(ctx, doc)
	}

	var notice *export.Notice
	switch {
	case errors.As(err, &notice):
		fmt.Fprintln(os.Stderr, "⚠️ "+notice.Message)
	case err != nil:
		fmt.Fprintln(os.Stderr, "⚠️ "+err.Error())
	case res.Method == export.MethodClipboard:
		fmt.Fprintln(os.Stderr, "✅ 已複製到剪貼簿")
	default:
		fmt.Fprintln(os.Stderr, "✅ 已下載："+res.Path)
	}
	return nil
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&genCopy, "copy", false, "Copy the document to the clipboard (falls back to a download)")
	cmd.Flags().BoolVar(&genDownload, "download", false, "Save the document as a timestamped .txt file")
	cmd.Flags().StringVar(&genDir, "out-dir", "", "Download directory (default from config)")
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genType, "type", "t", string(core.DefaultDocType), "Document type: talk, course or activity")
	f.StringVar(&genFields.Organization, "org", "", "Organization")
	f.StringVar(&genFields.Audience, "audience", "", "Audience")
	f.StringVar(&genFields.Duration, "duration", "", "Duration")
	f.StringVar(&genFields.Headcount, "people", "", "Headcount")
	f.StringVar(&genFields.Topic, "topic", "", "Title (generated when empty)")
	f.StringVar(&genFields.Pains, "pains", "", "Main pain points or keywords")
	f.StringVar(&genFile, "fields", "", "YAML file with the fields above; flags override it")
	f.StringSliceVarP(&genSelected, "select", "s", nil, "Tool IDs to include")
	addExportFlags(generateCmd)

	rootCmd.AddCommand(generateCmd)
}
