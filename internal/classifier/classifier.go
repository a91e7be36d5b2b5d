// Package classifier tags statement rows with categories by exact,
// case-insensitive keyword match and sums the tagged amounts per category.
//
// Everything here is a pure function of its arguments: callers pass the
// taxonomy and the rows explicitly and get new slices back.
package classifier

import (
	"sort"
	"strings"

	"finsort/internal/models"
)

// Options tunes a classification run.
type Options struct {
	// DefaultLabel is assigned to rows no keyword matched.
	DefaultLabel string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{DefaultLabel: models.DefaultLabel}
}

// Result is the outcome of Classify.
type Result struct {
	// Rows holds every input row, labelled, sorted by label.
	Rows []models.Row
	// Unmatched holds rows of a track that matched no keyword, in input order.
	Unmatched []models.UnmatchedRow
}

type matcher struct {
	name     string
	keywords []string // lowercased
}

func compile(cats []models.Category) []matcher {
	out := make([]matcher, len(cats))
	for i, c := range cats {
		kws := make([]string, len(c.Keywords))
		for j, kw := range c.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		out[i] = matcher{name: c.Name, keywords: kws}
	}
	return out
}

// match returns the first category, in table order, owning a keyword equal to
// activity. activity must already be lowercased.
func match(table []matcher, activity string) (string, bool) {
	for _, m := range table {
		for _, kw := range m.keywords {
			if kw == activity {
				return m.name, true
			}
		}
	}
	return "", false
}

// Classify labels rows against tax. Existing labels are discarded: every row
// is evaluated from scratch, so running Classify on its own output is a no-op.
//
// A row uses the expense table when Expense > 0, otherwise the income table
// when Income > 0. Rows with neither keep the default label and are not
// reported as unmatched.
func Classify(rows []models.Row, tax models.Taxonomy, opts Options) Result {
	if opts.DefaultLabel == "" {
		opts.DefaultLabel = models.DefaultLabel
	}
	expense := compile(tax.Expense)
	income := compile(tax.Income)

	out := make([]models.Row, len(rows))
	var unmatched []models.UnmatchedRow

	for i, row := range rows {
		row.Classification = opts.DefaultLabel

		var table []matcher
		switch {
		case row.Expense.IsPositive():
			table = expense
		case row.Income.IsPositive():
			table = income
		default:
			out[i] = row
			continue
		}

		if name, ok := match(table, strings.ToLower(row.Activity)); ok {
			row.Classification = name
		} else {
			unmatched = append(unmatched, models.UnmatchedRow{Row: row, Index: i})
		}
		out[i] = row
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Classification < out[b].Classification
	})

	return Result{Rows: out, Unmatched: unmatched}
}
