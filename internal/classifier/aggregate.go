package classifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"finsort/internal/models"
)

// Aggregate sums row amounts per known category. Every category of both
// tables gets a bucket, zero if nothing matched, ordered expense table first.
// A name present in both tables shares one bucket. Rows whose label is not a
// known category are ignored.
func Aggregate(rows []models.Row, tax models.Taxonomy) []models.CategoryTotal {
	names := tax.CategoryNames()
	totals := make([]models.CategoryTotal, len(names))
	index := make(map[string]int, len(names))
	for i, name := range names {
		totals[i] = models.CategoryTotal{Category: name, Total: decimal.Zero}
		index[name] = i
	}

	for _, row := range rows {
		i, ok := index[strings.TrimSpace(row.Classification)]
		if !ok {
			continue
		}
		totals[i].Total = totals[i].Total.Add(row.Amount())
	}
	return totals
}
