package dto

import (
	"encoding/json"
	"testing"
	"time"

	"finsort/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_MarshalsAmountsAsNumbers(t *testing.T) {
	row := RowFromModel(models.Row{
		Date:           "01/03/2025",
		Activity:       "WALMART",
		Expense:        decimal.RequireFromString("42.50"),
		Total:          decimal.RequireFromString("1957.5"),
		Classification: "Groceries",
	})

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"01/03/2025","activity":"WALMART","expense":42.5,"income":0,"total":1957.5,"classification":"Groceries"}`, string(data))
}

func TestRow_UnmarshalCoercesLooseInput(t *testing.T) {
	var rows []Row
	err := json.Unmarshal([]byte(`[
		{"date": 20250103, "activity": "Costco", "expense": "80.00", "income": null, "total": "n/a", "classification": "No classification"},
		{"date": "01/04/2025", "activity": 7, "expense": 1.5, "income": "", "total": 12}
	]`), &rows)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0].ToModel()
	assert.Equal(t, "20250103", first.Date)
	assert.Equal(t, "80", first.Expense.String())
	assert.True(t, first.Income.IsZero())
	assert.True(t, first.Total.IsZero())

	second := rows[1].ToModel()
	assert.Equal(t, "7", second.Activity)
	assert.Equal(t, "1.5", second.Expense.String())
	assert.Equal(t, "", second.Classification)
}

func TestRow_RejectsStructuredText(t *testing.T) {
	var row Row
	err := json.Unmarshal([]byte(`{"activity": {"nested": true}}`), &row)
	assert.Error(t, err)
}

func TestUnmatchedRow_CarriesIdx(t *testing.T) {
	out := UnmatchedFromModels([]models.UnmatchedRow{
		{Row: models.Row{Activity: "unknown vendor", Expense: decimal.NewFromInt(10)}, Index: 1},
	})
	data, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(1), decoded[0]["idx"])
	assert.Equal(t, "unknown vendor", decoded[0]["activity"])

	assert.Nil(t, UnmatchedFromModels(nil))
}

func TestUploadResponse_OmitsEmptyRemClass(t *testing.T) {
	data, err := json.Marshal(UploadResponse{Parsed: []Row{}, FileID: "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"parsed":[],"fileId":"abc"}`, string(data))
}

func TestPivotRow_PositionalAndObjectForms(t *testing.T) {
	var rows []PivotRow
	err := json.Unmarshal([]byte(`[
		["01/03/2025", "WALMART", 42.5, 0, "Groceries"],
		["01/04/2025", "Payroll", null, "2500", "Salary"],
		["short"],
		{"date": "01/05/2025", "activity": "Shell", "expense": 30, "classification": "Fuel"}
	]`), &rows)
	require.NoError(t, err)

	got := PivotRowsToModels(rows)
	require.Len(t, got, 4)
	assert.Equal(t, "Groceries", got[0].Classification)
	assert.Equal(t, "42.5", got[0].Expense.String())
	assert.Equal(t, "2500", got[1].Income.String())
	assert.Equal(t, "short", got[2].Date)
	assert.Equal(t, "Fuel", got[3].Classification)
	assert.Equal(t, "30", got[3].Expense.String())
}

func TestCategoryTotal_IsAPair(t *testing.T) {
	totals := TotalsFromModels([]models.CategoryTotal{
		{Category: "Groceries", Total: decimal.RequireFromString("15.25")},
		{Category: "Fuel", Total: decimal.Zero},
	})
	data, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.JSONEq(t, `[["Groceries",15.25],["Fuel",0]]`, string(data))

	var back []CategoryTotal
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "Groceries", back[0].Category)
	assert.True(t, back[0].Total.Equal(decimal.RequireFromString("15.25")))

	assert.Error(t, json.Unmarshal([]byte(`[["only-name"]]`), &back))
}

func TestFileFromModel(t *testing.T) {
	folder := uuid.New()
	rec := &models.FileRecord{
		ID:         uuid.New(),
		FileName:   "jan.csv",
		FolderID:   &folder,
		UploadedAt: time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC),
	}

	resp := FileFromModel(rec)
	assert.Equal(t, rec.ID.String(), resp.ID)
	require.NotNil(t, resp.FolderID)
	assert.Equal(t, folder.String(), *resp.FolderID)
	assert.Equal(t, "2025-01-31T08:00:00Z", resp.UploadedAt)
	assert.Nil(t, resp.Rows)
}

func TestParseOptionalID(t *testing.T) {
	id, err := ParseOptionalID(nil)
	require.NoError(t, err)
	assert.Nil(t, id)

	empty := ""
	id, err = ParseOptionalID(&empty)
	require.NoError(t, err)
	assert.Nil(t, id)

	want := uuid.New()
	s := want.String()
	id, err = ParseOptionalID(&s)
	require.NoError(t, err)
	assert.Equal(t, want, *id)

	bad := "not-a-uuid"
	_, err = ParseOptionalID(&bad)
	assert.Error(t, err)
}

func TestAmount_OutOfRangeReadsAsZero(t *testing.T) {
	var rows []PivotRow
	err := json.Unmarshal([]byte(`[
		["01/03/2025", "WALMART", 1e30000000, 0, "Groceries"],
		{"date": "01/04/2025", "activity": "Shell", "expense": "1e400", "classification": "Fuel"}
	]`), &rows)
	require.NoError(t, err)

	got := PivotRowsToModels(rows)
	require.Len(t, got, 2)
	assert.True(t, got[0].Expense.IsZero())
	assert.True(t, got[1].Expense.IsZero())
}
