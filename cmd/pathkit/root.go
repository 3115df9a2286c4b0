package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.pathkit.dev/pathkit/config"
)

// rootFlags holds the persistent --roots/--templates flag values shared
// by every subcommand that needs to resolve a configured template.
type rootFlags struct {
	rootsPath     string
	templatesPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pathkit",
		Short:         "Apply and parse path/string templates",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&flags.rootsPath, "roots", "roots.yml", "path to roots.yml")
	cmd.PersistentFlags().StringVar(&flags.templatesPath, "templates", "templates.yml", "path to templates.yml")

	cmd.AddCommand(
		newApplyCmd(flags),
		newParseCmd(flags),
		newValidateCmd(flags),
		newListCmd(flags),
		newVersionCmd(),
	)

	return cmd
}

// loadTemplateSet loads roots.yml and templates.yml per flags.
func loadTemplateSet(cmd *cobra.Command, flags *rootFlags) (*config.TemplateSet, error) {
	roots, err := config.LoadRoots(cmd.Context(), flags.rootsPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", flags.rootsPath, err)
	}

	set, err := config.LoadTemplates(cmd.Context(), flags.templatesPath, roots)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", flags.templatesPath, err)
	}

	return set, nil
}
