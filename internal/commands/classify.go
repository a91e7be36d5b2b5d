package commands

import (
	"errors"
	"fmt"
	"os"

	"finsort/internal/classifier"
	"finsort/internal/models"

	"github.com/spf13/cobra"
)

func newClassifyCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "classify <statement.csv>",
		Short: "Label every row of a statement and print it as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, a, args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the classified CSV to this file instead of stdout")

	return cmd
}

func runClassify(cmd *cobra.Command, a *app, path, out string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
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

	res := classifier.Classify(rows, tax, classifier.Options{DefaultLabel: a.defaultLabel})

	if out == "" {
		if err := classifier.WriteCSV(cmd.OutOrStdout(), res.Rows); err != nil {
			return err
		}
	} else if err := writeCSVFile(out, res.Rows); err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	for _, u := range res.Unmatched {
		fmt.Fprintf(errOut, "unmatched row %d: %s %s\n", u.Index, u.Date, u.Activity)
	}
	if out != "" {
		fmt.Fprintf(errOut, "Classified %d rows into %s (%d unmatched)\n", len(res.Rows), out, len(res.Unmatched))
	}
	return nil
}

func writeCSVFile(path string, rows []models.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	werr := classifier.WriteCSV(f, rows)
	if err := errors.Join(werr, f.Close()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
