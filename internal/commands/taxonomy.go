package commands

import (
	"fmt"
	"strings"

	"finsort/internal/models"

	"github.com/spf13/cobra"
)

func newKeywordCommand(a *app) *cobra.Command {
	keywordCmd := &cobra.Command{
		Use:   "keyword",
		Short: "Keyword operations",
	}
	keywordCmd.AddCommand(newKeywordAddCommand(a))
	return keywordCmd
}

func newKeywordAddCommand(a *app) *cobra.Command {
	var trackType string

	cmd := &cobra.Command{
		Use:   "add <category> <keyword>",
		Short: "Attribute an activity to an existing category",
		Long:  "Attribute an activity to an existing category. Without --type the expense table is searched first.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeywordAdd(cmd, a, args[0], args[1], trackType)
		},
	}

	cmd.Flags().StringVar(&trackType, "type", "", "table holding the category (expense or income)")

	return cmd
}

func runKeywordAdd(cmd *cobra.Command, a *app, category, keyword, trackType string) error {
	svc := a.taxonomyService()
	ctx := cmd.Context()

	var track models.Track
	if trackType != "" {
		track = models.ParseTrack(trackType)
	} else {
		var err error
		if track, err = svc.ResolveTrack(ctx, category); err != nil {
			return err
		}
	}

	if err := svc.AddKeyword(ctx, track, category, keyword); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s category %s\n", keyword, track, strings.TrimSpace(category))
	return nil
}

func newCategoryCommand(a *app) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Category operations",
	}
	categoryCmd.AddCommand(newCategoryAddCommand(a))
	return categoryCmd
}

func newCategoryAddCommand(a *app) *cobra.Command {
	var trackType string

	cmd := &cobra.Command{
		Use:   "add <category> <seed-keyword>",
		Short: "Create a category seeded with one keyword",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			track := models.ParseTrack(trackType)
			if err := a.taxonomyService().AddCategory(cmd.Context(), track, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s category %s\n", track, strings.TrimSpace(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&trackType, "type", string(models.TrackExpense), "table to add the category to (expense or income)")

	return cmd
}

func newOptionsCommand(a *app) *cobra.Command {
	var trackType string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List category names of one table, sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.taxonomyService().Options(cmd.Context(), models.ParseTrack(trackType))
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&trackType, "type", string(models.TrackExpense), "table to list (expense or income)")

	return cmd
}
