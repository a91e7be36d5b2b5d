package commands

import (
	"finsort/internal/repository"
	"finsort/internal/service"
	"finsort/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand needs. Paths are bound to the persistent
// flags and read when a command runs.
type app struct {
	expenseFile  string
	incomeFile   string
	defaultLabel string
	logger       *zap.Logger
}

func (a *app) repository() *repository.TaxonomyRepository {
	return repository.NewTaxonomyRepository(a.expenseFile, a.incomeFile, a.logger)
}

func (a *app) taxonomyService() *service.TaxonomyService {
	return service.NewTaxonomyService(a.repository(), a.logger)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// cfg supplies the flag defaults.
func NewRootCommand(cfg config.TaxonomyConfig, logger *zap.Logger) *cobra.Command {
	a := &app{defaultLabel: cfg.DefaultLabel, logger: logger}

	rootCmd := &cobra.Command{
		Use:   "finsortctl",
		Short: "Classify bank statements and edit the category taxonomy",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.expenseFile, "expense-file", cfg.ExpenseFile, "expense taxonomy file")
	rootCmd.PersistentFlags().StringVar(&a.incomeFile, "income-file", cfg.IncomeFile, "income taxonomy file")

	rootCmd.AddCommand(
		newClassifyCommand(a),
		newPivotCommand(a),
		newKeywordCommand(a),
		newCategoryCommand(a),
		newOptionsCommand(a),
		newSeedCommand(a),
	)

	return rootCmd
}
