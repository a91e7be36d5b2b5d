package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"finsort/internal/classifier"

	"github.com/spf13/cobra"
)

func newPivotCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pivot <classified.csv>",
		Short: "Print category totals of a classified statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPivot(cmd, a, args[0])
		},
	}
}

func runPivot(cmd *cobra.Command, a *app, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening classified statement: %w", err)
	}
	defer f.Close()

	rows, err := classifier.ParseCSV(f)
	if err != nil {
		return err
	}

	tax, err := a.taxonomyService().Taxonomy(cmd.Context())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, t := range classifier.Aggregate(rows, tax) {
		fmt.Fprintf(tw, "%s\t%s\n", t.Category, t.Total.StringFixed(2))
	}
	return tw.Flush()
}
