package models

import (
	"github.com/shopspring/decimal"
)

// DefaultLabel is the classification a row carries until a keyword matches.
const DefaultLabel = "No classification"

// Row is one bank statement line. The same record is used for classification,
// aggregation and storage.
type Row struct {
	Date           string          `json:"date"`
	Activity       string          `json:"activity"`
	Expense        decimal.Decimal `json:"expense"` // zero if not an expense
	Income         decimal.Decimal `json:"income"`  // zero if not income
	Total          decimal.Decimal `json:"total"`   // running balance as printed by the bank
	Classification string          `json:"classification"`
}

// Amount returns the amount the row contributes to its category: the expense
// when positive, otherwise the income when positive, otherwise zero.
func (r Row) Amount() decimal.Decimal {
	if r.Expense.IsPositive() {
		return r.Expense
	}
	if r.Income.IsPositive() {
		return r.Income
	}
	return decimal.Zero
}

// UnmatchedRow is a row no keyword matched, with its position in the input.
type UnmatchedRow struct {
	Row
	Index int `json:"idx"`
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
