package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.pathkit.dev/pathkit/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print pathkit's build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())

			return nil
		},
	}
}
