package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newApplyCmd(flags *rootFlags) *cobra.Command {
	var (
		fieldArgs []string
		platform  string
	)

	cmd := &cobra.Command{
		Use:   "apply <template> [--field name=value ...]",
		Short: "Render a template from field values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadTemplateSet(cmd, flags)
			if err != nil {
				return err
			}

			name := args[0]

			if tp, ok := set.Paths[name]; ok {
				fields, err := parseFields(fieldArgs, set.Keys)
				if err != nil {
					return err
				}

				out, err := tp.Apply(fields, platform)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), out)

				return nil
			}

			if ts, ok := set.Strings[name]; ok {
				fields, err := parseFields(fieldArgs, set.Keys)
				if err != nil {
					return err
				}

				out, err := ts.Apply(fields)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), out)

				return nil
			}

			return fmt.Errorf("no path or string template named %q", name)
		},
	}

	cmd.Flags().StringArrayVar(&fieldArgs, "field", nil, "field as name=value, repeatable")
	cmd.Flags().StringVar(&platform, "platform", "", "OS identifier to render the root for (path templates only)")

	return cmd
}
