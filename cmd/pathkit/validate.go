package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <template> <input>",
		Short: "Report whether a string matches a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadTemplateSet(cmd, flags)
			if err != nil {
				return err
			}

			name, input := args[0], args[1]

			var ok bool

			switch {
			case set.Paths[name] != nil:
				ok = set.Paths[name].Validate(input, nil)
			case set.Strings[name] != nil:
				ok = set.Strings[name].Validate(input, nil)
			default:
				return fmt.Errorf("no path or string template named %q", name)
			}

			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")

				return cmdErrNoMatch
			}

			fmt.Fprintln(cmd.OutOrStdout(), "match")

			return nil
		},
	}

	return cmd
}

// cmdErrNoMatch signals validate's failure exit status without printing a
// redundant error line (the "no match" line already reported it).
var cmdErrNoMatch = &silentError{}

// silentError carries a non-zero exit status with no message of its own.
type silentError struct{}

func (*silentError) Error() string { return "" }
