package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/proposal/pkg/adapters/fs"
	"github.com/aretw0/proposal/pkg/core"
	"github.com/aretw0/proposal/pkg/tabular"
)

var (
	toolsQuery string
	toolsJSON  bool
	exportOut  string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools of the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openRecords(cmd.Context())
		if err != nil {
			return err
		}

		view := core.Render(svc.Session().WithQuery(toolsQuery))
		out := cmd.OutOrStdout()

		if toolsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		}

		fmt.Fprintln(out, view.Status)
		if view.Notice != "" {
			fmt.Fprintln(out, view.Notice)
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCORE")
		for _, it := range view.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ID, it.Name, it.Category, it.Core)
		}
		return w.Flush()
	},
}

var toolsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the valid records back as CSV with canonical headers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openRecords(cmd.Context())
		if err != nil {
			return err
		}

		records := core.Filter(svc.Records(), toolsQuery)
		rows := make([]tabular.Row, len(records))
		for i, r := range records {
			rows[i] = r.Row()
		}
		text, err := tabular.Encode(core.RecordHeader, rows)
		if err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}

		if exportOut == "" || exportOut == "-" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		}
		if err := fs.SaveFile(exportOut, []byte(text)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✅ 已匯出 %d 筆工具到 %s\n", len(records), exportOut)
		return nil
	},
}

func init() {
	toolsCmd.PersistentFlags().StringVarP(&toolsQuery, "query", "q", "", "Only tools matching this keyword")
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Output as JSON")
	toolsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")

	toolsCmd.AddCommand(toolsExportCmd)
	rootCmd.AddCommand(toolsCmd)
}
