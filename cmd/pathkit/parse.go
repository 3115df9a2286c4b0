package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newParseCmd(flags *rootFlags) *cobra.Command {
	var skipKeys []string

	cmd := &cobra.Command{
		Use:   "parse <template> <input>",
		Short: "Parse a string against a template and print its fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadTemplateSet(cmd, flags)
			if err != nil {
				return err
			}

			name, input := args[0], args[1]

			var fields map[string]any

			switch {
			case set.Paths[name] != nil:
				fields, err = set.Paths[name].GetFields(input, skipKeys...)
			case set.Strings[name] != nil:
				fields, err = set.Strings[name].GetFields(input, skipKeys...)
			default:
				return fmt.Errorf("no path or string template named %q", name)
			}

			if err != nil {
				return err
			}

			names := make([]string, 0, len(fields))
			for k := range fields {
				names = append(names, k)
			}

			sort.Strings(names)

			for _, k := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%v\n", k, fields[k])
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&skipKeys, "skip-key", nil, "key name to accept without binding, repeatable")

	return cmd
}
