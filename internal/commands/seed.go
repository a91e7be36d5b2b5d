package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the default taxonomy files",
		Long:  "Write the default taxonomy for every table whose file is missing. --force overwrites both files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := a.repository().Seed(cmd.Context(), force)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintln(cmd.OutOrStdout(), "Taxonomy files already present")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default taxonomy written to %s and %s\n", a.expenseFile, a.incomeFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing taxonomy files")

	return cmd
}
