package classifier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsort/internal/models"
)

func testTaxonomy() models.Taxonomy {
	return models.Taxonomy{
		Expense: []models.Category{
			{Name: "Groceries", Keywords: []string{"walmart", "Trader Joe's"}},
			{Name: "Fuel", Keywords: []string{"shell"}},
			{Name: "Wholesale", Keywords: []string{"walmart", "costco"}},
		},
		Income: []models.Category{
			{Name: "Salary", Keywords: []string{"payroll"}},
			{Name: "Interest", Keywords: []string{"interest payment"}},
		},
	}
}

func expenseRow(activity, amount string) models.Row {
	return models.Row{Activity: activity, Expense: decimal.RequireFromString(amount)}
}

func incomeRow(activity, amount string) models.Row {
	return models.Row{Activity: activity, Income: decimal.RequireFromString(amount)}
}

func TestClassify_MatchesExpenseKeywordIgnoringCase(t *testing.T) {
	res := Classify([]models.Row{expenseRow("WALMART", "42.50")}, testTaxonomy(), DefaultOptions())

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Groceries", res.Rows[0].Classification)
	assert.Empty(t, res.Unmatched)
}

func TestClassify_MixedCaseKeyword(t *testing.T) {
	res := Classify([]models.Row{expenseRow("trader joe's", "12")}, testTaxonomy(), DefaultOptions())
	assert.Equal(t, "Groceries", res.Rows[0].Classification)
}

func TestClassify_FirstCategoryInTableOrderWins(t *testing.T) {
	// "walmart" is attributed to both Groceries and Wholesale.
	res := Classify([]models.Row{expenseRow("Walmart", "5")}, testTaxonomy(), DefaultOptions())
	assert.Equal(t, "Groceries", res.Rows[0].Classification)
}

func TestClassify_UnmatchedKeepsIndexAndDefaultLabel(t *testing.T) {
	rows := []models.Row{
		expenseRow("walmart", "1"),
		expenseRow("unknown vendor", "10"),
	}
	res := Classify(rows, testTaxonomy(), DefaultOptions())

	require.Len(t, res.Unmatched, 1)
	assert.Equal(t, 1, res.Unmatched[0].Index)
	assert.Equal(t, "unknown vendor", res.Unmatched[0].Activity)
	assert.Equal(t, models.DefaultLabel, res.Unmatched[0].Classification)

	labels := map[string]string{}
	for _, r := range res.Rows {
		labels[r.Activity] = r.Classification
	}
	assert.Equal(t, models.DefaultLabel, labels["unknown vendor"])
}

func TestClassify_ExactMatchOnly(t *testing.T) {
	rows := []models.Row{
		expenseRow("walmart supercenter", "3"),
		expenseRow(" walmart", "3"),
	}
	res := Classify(rows, testTaxonomy(), DefaultOptions())
	assert.Len(t, res.Unmatched, 2)
}

func TestClassify_IncomeTrack(t *testing.T) {
	rows := []models.Row{
		incomeRow("PAYROLL", "2500"),
		// An income row never matches expense keywords.
		incomeRow("walmart", "4"),
	}
	res := Classify(rows, testTaxonomy(), DefaultOptions())

	assert.Equal(t, "Salary", findRow(t, res.Rows, "PAYROLL").Classification)
	require.Len(t, res.Unmatched, 1)
	assert.Equal(t, 1, res.Unmatched[0].Index)
}

func TestClassify_ExpenseTakesPrecedenceOverIncome(t *testing.T) {
	row := models.Row{Activity: "payroll", Expense: decimal.NewFromInt(1), Income: decimal.NewFromInt(1)}
	res := Classify([]models.Row{row}, testTaxonomy(), DefaultOptions())

	// Looked up in the expense table only, where "payroll" is unknown.
	assert.Equal(t, models.DefaultLabel, res.Rows[0].Classification)
	assert.Len(t, res.Unmatched, 1)
}

func TestClassify_RowWithoutAmountIsSkipped(t *testing.T) {
	rows := []models.Row{
		{Activity: "walmart"},
		{Activity: "opening balance", Expense: decimal.NewFromInt(-3)},
	}
	res := Classify(rows, testTaxonomy(), DefaultOptions())

	assert.Empty(t, res.Unmatched)
	for _, r := range res.Rows {
		assert.Equal(t, models.DefaultLabel, r.Classification)
	}
}

func TestClassify_DiscardsStaleLabels(t *testing.T) {
	row := expenseRow("shell", "30")
	row.Classification = "Groceries"

	res := Classify([]models.Row{row}, testTaxonomy(), DefaultOptions())
	assert.Equal(t, "Fuel", res.Rows[0].Classification)

	stale := expenseRow("unknown", "30")
	stale.Classification = "Fuel"
	res = Classify([]models.Row{stale}, testTaxonomy(), DefaultOptions())
	assert.Equal(t, models.DefaultLabel, res.Rows[0].Classification)
}

func TestClassify_Idempotent(t *testing.T) {
	rows := []models.Row{
		expenseRow("costco", "10"),
		incomeRow("payroll", "100"),
		expenseRow("mystery", "1"),
		expenseRow("shell", "20"),
		{Activity: "balance"},
	}
	tax := testTaxonomy()

	first := Classify(rows, tax, DefaultOptions())
	second := Classify(first.Rows, tax, DefaultOptions())

	assert.Equal(t, first.Rows, second.Rows)
	assert.Len(t, second.Unmatched, len(first.Unmatched))
}

func TestClassify_SortsByLabelStably(t *testing.T) {
	rows := []models.Row{
		expenseRow("shell", "1"),
		expenseRow("walmart", "2"),
		expenseRow("shell", "3"),
		expenseRow("costco", "4"),
	}
	res := Classify(rows, testTaxonomy(), DefaultOptions())

	var got []string
	for _, r := range res.Rows {
		got = append(got, r.Classification+":"+r.Expense.String())
	}
	assert.Equal(t, []string{"Fuel:1", "Fuel:3", "Groceries:2", "Wholesale:4"}, got)
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	rows := []models.Row{expenseRow("walmart", "1")}
	_ = Classify(rows, testTaxonomy(), DefaultOptions())
	assert.Empty(t, rows[0].Classification)
}

func TestClassify_CustomDefaultLabel(t *testing.T) {
	res := Classify([]models.Row{expenseRow("nope", "1")}, testTaxonomy(), Options{DefaultLabel: "unclassified"})
	assert.Equal(t, "unclassified", res.Rows[0].Classification)
}

func TestClassify_EmptyTaxonomy(t *testing.T) {
	res := Classify([]models.Row{expenseRow("walmart", "1"), incomeRow("payroll", "1")}, models.Taxonomy{}, DefaultOptions())
	assert.Len(t, res.Unmatched, 2)
}

func findRow(t *testing.T, rows []models.Row, activity string) models.Row {
	t.Helper()
	for _, r := range rows {
		if r.Activity == activity {
			return r
		}
	}
	t.Fatalf("row %q not found", activity)
	return models.Row{}
}
