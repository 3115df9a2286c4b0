package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the path and string templates configured by templates.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadTemplateSet(cmd, flags)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(set.Paths)+len(set.Strings))

			for name := range set.Paths {
				names = append(names, name+"\tpath\t"+set.Paths[name].Definition())
			}

			for name := range set.Strings {
				names = append(names, name+"\tstring\t"+set.Strings[name].Definition())
			}

			sort.Strings(names)

			for _, line := range names {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}
}
