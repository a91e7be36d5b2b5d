package models

import "strings"

// Track selects the expense or income half of the taxonomy.
type Track string

const (
	TrackExpense Track = "expense"
	TrackIncome  Track = "income"
)

// ParseTrack maps a caller supplied type to a track: "income" selects the
// income table, anything else the expense table.
func ParseTrack(s string) Track {
	if strings.EqualFold(strings.TrimSpace(s), string(TrackIncome)) {
		return TrackIncome
	}
	return TrackExpense
}

// Category is a named bucket and the keywords that select it.
type Category struct {
	Name     string
	Keywords []string
}

// HasKeyword reports whether kw is already attributed, ignoring case.
func (c Category) HasKeyword(kw string) bool {
	for _, k := range c.Keywords {
		if strings.EqualFold(k, kw) {
			return true
		}
	}
	return false
}

// Taxonomy holds both category tables in stored order.
type Taxonomy struct {
	Expense []Category
	Income  []Category
}

// Table returns the categories of a track.
func (t Taxonomy) Table(track Track) []Category {
	if track == TrackIncome {
		return t.Income
	}
	return t.Expense
}

// CategoryNames returns expense then income category names with duplicates
// dropped at their later position.
func (t Taxonomy) CategoryNames() []string {
	seen := make(map[string]struct{}, len(t.Expense)+len(t.Income))
	names := make([]string, 0, len(t.Expense)+len(t.Income))
	for _, table := range [][]Category{t.Expense, t.Income} {
		for _, c := range table {
			if _, ok := seen[c.Name]; ok {
				continue
			}
			seen[c.Name] = struct{}{}
			names = append(names, c.Name)
		}
	}
	return names
}

// FindCategory returns the index of name in cats, or -1.
func FindCategory(cats []Category, name string) int {
	for i, c := range cats {
		if c.Name == name {
			return i
		}
	}
	return -1
}
