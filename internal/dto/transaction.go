package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"finsort/internal/classifier"
	"finsort/internal/models"

	"github.com/shopspring/decimal"
)

// Amount is a money value written as a bare JSON number. On input it also
// accepts strings and null; anything unparsable reads as zero.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		a.Decimal = decimal.Zero
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.Decimal = classifier.ParseAmount(s)
	default:
		a.Decimal = classifier.ParseAmount(string(data))
	}
	return nil
}

// Text is a string field that also accepts numbers and null, which spreadsheet
// style clients send for dates and numeric descriptions.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("expected text, got %s", data)
	default:
		*t = Text(data)
	}
	return nil
}

// Row is a statement line on the wire.
type Row struct {
	Date           Text   `json:"date" swaggertype:"string"`
	Activity       Text   `json:"activity" swaggertype:"string"`
	Expense        Amount `json:"expense" swaggertype:"number"`
	Income         Amount `json:"income" swaggertype:"number"`
	Total          Amount `json:"total" swaggertype:"number"`
	Classification Text   `json:"classification" swaggertype:"string"`
}

// UnmatchedRow is a row no keyword matched, with its input position.
type UnmatchedRow struct {
	Row
	Idx int `json:"idx"`
}

// CategoryTotal is written as a [name, total] pair.
type CategoryTotal struct {
	Category string
	Total    Amount
}

func (ct CategoryTotal) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{ct.Category, ct.Total})
}

func (ct *CategoryTotal) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("category total must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &ct.Category); err != nil {
		return err
	}
	return ct.Total.UnmarshalJSON(pair[1])
}

// PivotRow is one row of a pivot request: either a row object or the
// positional form [date, activity, expense, income, classification].
type PivotRow struct {
	Row
}

func (p *PivotRow) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return json.Unmarshal(data, &p.Row)
	}

	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	targets := []json.Unmarshaler{&p.Date, &p.Activity, &p.Expense, &p.Income, &p.Classification}
	for i, target := range targets {
		if i >= len(fields) {
			break
		}
		if err := target.UnmarshalJSON(fields[i]); err != nil {
			return fmt.Errorf("pivot field %d: %w", i, err)
		}
	}
	return nil
}

type UploadResponse struct {
	Parsed   []Row          `json:"parsed"`
	RemClass []UnmatchedRow `json:"rem_class,omitempty"`
	FileID   string         `json:"fileId,omitempty"`
}

type ReclassifyResponse struct {
	Parsed   []Row          `json:"parsed"`
	RemClass []UnmatchedRow `json:"rem_class,omitempty"`
}

func RowFromModel(r models.Row) Row {
	return Row{
		Date:           Text(r.Date),
		Activity:       Text(r.Activity),
		Expense:        NewAmount(r.Expense),
		Income:         NewAmount(r.Income),
		Total:          NewAmount(r.Total),
		Classification: Text(r.Classification),
	}
}

func (r Row) ToModel() models.Row {
	return models.Row{
		Date:           string(r.Date),
		Activity:       string(r.Activity),
		Expense:        r.Expense.Decimal,
		Income:         r.Income.Decimal,
		Total:          r.Total.Decimal,
		Classification: string(r.Classification),
	}
}

func RowsFromModels(rows []models.Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = RowFromModel(r)
	}
	return out
}

func RowsToModels(rows []Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, r := range rows {
		out[i] = r.ToModel()
	}
	return out
}

func PivotRowsToModels(rows []PivotRow) []models.Row {
	out := make([]models.Row, len(rows))
	for i, r := range rows {
		out[i] = r.ToModel()
	}
	return out
}

func UnmatchedFromModels(rows []models.UnmatchedRow) []UnmatchedRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]UnmatchedRow, len(rows))
	for i, r := range rows {
		out[i] = UnmatchedRow{Row: RowFromModel(r.Row), Idx: r.Index}
	}
	return out
}

func TotalsFromModels(totals []models.CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(totals))
	for i, t := range totals {
		out[i] = CategoryTotal{Category: t.Category, Total: NewAmount(t.Total)}
	}
	return out
}
