package classifier

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finsort/internal/models"
)

// Statement layout: date, activity, expense, income, total. An optional sixth
// column carries a previously assigned classification.
const (
	numFields         = 5
	colDate           = 0
	colActivity       = 1
	colExpense        = 2
	colIncome         = 3
	colTotal          = 4
	colClassification = 5
)

// amountScale is the number of decimal places kept for amounts written with
// more fractional digits than that.
const amountScale = 8

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	// thousandsGrouped matches "1,204.10" but not "12,50".
	thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)
)

// ParseCSV reads a headerless bank statement. Amount fields are coerced, never
// rejected: anything that is not a number reads as zero.
func ParseCSV(r io.Reader) ([]models.Row, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	// A quote inside an unquoted field, as in MACY"S, is kept as text.
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	rows := make([]models.Row, 0, len(records))
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		rows = append(rows, UnmarshalRow(rec))
	}
	return rows, nil
}

// UnmarshalRow converts a CSV record to a Row, padding short records.
func UnmarshalRow(record []string) models.Row {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	return models.Row{
		Date:           strings.TrimSpace(field(colDate)),
		Activity:       field(colActivity),
		Expense:        ParseAmount(field(colExpense)),
		Income:         ParseAmount(field(colIncome)),
		Total:          ParseAmount(field(colTotal)),
		Classification: strings.TrimSpace(field(colClassification)),
	}
}

// MarshalRow converts a Row to a six-column CSV record.
func MarshalRow(row models.Row) []string {
	rec := make([]string, numFields+1)
	rec[colDate] = row.Date
	rec[colActivity] = row.Activity
	rec[colExpense] = row.Expense.String()
	rec[colIncome] = row.Income.String()
	rec[colTotal] = row.Total.String()
	rec[colClassification] = row.Classification
	return rec
}

// WriteCSV writes classified rows in the statement layout plus the
// classification column.
func WriteCSV(w io.Writer, rows []models.Row) error {
	cw := csv.NewWriter(w)
	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseAmount coerces a statement amount. Dollar signs and blanks are dropped,
// commas only when they group thousands. Anything that is not a finite number,
// including values beyond float64 range, is zero. Digits past amountScale
// decimal places are rounded off.
func ParseAmount(s string) decimal.Decimal {
	s = strings.NewReplacer("$", "", " ", "").Replace(strings.TrimSpace(s))
	if thousandsGrouped.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}
	if s == "" {
		return decimal.Zero
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if d.Exponent() < -amountScale {
		// Rescaling from the literal exponent can be arbitrarily slow.
		return decimal.NewFromFloat(f).Round(amountScale)
	}
	return d
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
