package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/proposal"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of proposal",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "proposal version %s\n", strings.TrimSpace(proposal.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
