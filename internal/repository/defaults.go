package repository

import (
	"context"

	"finsort/internal/models"

	"go.uber.org/zap"
)

// DefaultTaxonomy is the starter taxonomy written by the seeders.
func DefaultTaxonomy() models.Taxonomy {
	return models.Taxonomy{
		Expense: []models.Category{
			{Name: "Groceries", Keywords: []string{"walmart", "trader joe's", "whole foods", "aldi"}},
			{Name: "Dining", Keywords: []string{"starbucks", "mcdonald's", "chipotle"}},
			{Name: "Transport", Keywords: []string{"shell", "chevron", "uber", "lyft"}},
			{Name: "Utilities", Keywords: []string{"comcast", "at&t", "pg&e"}},
			{Name: "Housing", Keywords: []string{"rent payment"}},
			{Name: "Shopping", Keywords: []string{"amazon", "target", "costco"}},
			{Name: "Subscriptions", Keywords: []string{"netflix", "spotify"}},
		},
		Income: []models.Category{
			{Name: "Salary", Keywords: []string{"payroll", "direct deposit"}},
			{Name: "Interest", Keywords: []string{"interest payment"}},
			{Name: "Refunds", Keywords: []string{"refund"}},
		},
	}
}

// Seed writes the default table of every track whose file is missing, or of
// both tracks when force is set. It reports whether anything was written.
func (r *TaxonomyRepository) Seed(ctx context.Context, force bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	defaults := DefaultTaxonomy()
	written := false
	for _, track := range []models.Track{models.TrackExpense, models.TrackIncome} {
		path := r.path(track)
		if !force && fileExists(path) {
			r.logger.Info("Taxonomy file already present, skipping seed",
				zap.String("track", string(track)),
				zap.String("path", path),
			)
			continue
		}
		if err := r.write(track, defaults.Table(track)); err != nil {
			return written, err
		}
		written = true
		r.logger.Info("Default taxonomy written",
			zap.String("track", string(track)),
			zap.String("path", path),
		)
	}
	return written, nil
}
