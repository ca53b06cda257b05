package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/proposal"
	"github.com/aretw0/proposal/internal/prompt"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a proposal interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd.Context())
		if err != nil {
			return err
		}

		driver := prompt.NewSurveyDriver(os.Stderr)
		answers, err := prompt.RunWizard(cmd.Context(), driver, svc)
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "已取消")
			return nil
		}
		if err != nil {
			return err
		}

		st := answers.Apply(svc.Session())
		return emit(cmd.Context(), cmd.OutOrStdout(), proposal.Generate(st))
	},
}

func init() {
	addExportFlags(wizardCmd)
	rootCmd.AddCommand(wizardCmd)
}
