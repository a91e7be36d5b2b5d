package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finsort/internal/models"
	"finsort/internal/repository"
	"finsort/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	dir    string
	cfg    config.TaxonomyConfig
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	return &harness{
		dir: dir,
		cfg: config.TaxonomyConfig{
			ExpenseFile:  filepath.Join(dir, "expense_classification.json"),
			IncomeFile:   filepath.Join(dir, "income_classification.json"),
			DefaultLabel: models.DefaultLabel,
		},
	}
}

func (h *harness) seedTaxonomy(t *testing.T) {
	t.Helper()
	repo := repository.NewTaxonomyRepository(h.cfg.ExpenseFile, h.cfg.IncomeFile, zap.NewNop())
	require.NoError(t, repo.Save(context.Background(), models.Taxonomy{
		Expense: []models.Category{
			{Name: "Shopping", Keywords: []string{"amazon"}},
			{Name: "Groceries", Keywords: []string{"walmart"}},
		},
		Income: []models.Category{
			{Name: "Salary", Keywords: []string{"payroll"}},
		},
	}))
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()
	cmd := NewRootCommand(h.cfg, zap.NewNop())
	cmd.SetOut(&h.stdout)
	cmd.SetErr(&h.stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (h *harness) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const statement = `01/03/2025,WALMART,42.50,,1957.50
01/04/2025,Costco,80.00,,1877.50
01/05/2025,Payroll,,2500.00,4377.50
`

func TestClassify_PrintsSortedCSVAndUnmatched(t *testing.T) {
	h := newHarness(t)
	h.seedTaxonomy(t)
	path := h.writeFile(t, "jan.csv", statement)

	require.NoError(t, h.run(t, "classify", path))

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "01/03/2025,WALMART,"))
	assert.True(t, strings.HasSuffix(lines[0], ",Groceries"))
	assert.True(t, strings.HasSuffix(lines[1], ",No classification"))
	assert.True(t, strings.HasSuffix(lines[2], ",Salary"))

	assert.Contains(t, h.stderr.String(), "unmatched row 1: 01/04/2025 Costco")
}

func TestClassify_OutFileThenPivot(t *testing.T) {
	h := newHarness(t)
	h.seedTaxonomy(t)
	path := h.writeFile(t, "jan.csv", statement)
	out := filepath.Join(h.dir, "jan.classified.csv")

	require.NoError(t, h.run(t, "classify", path, "--out", out))
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), "Classified 3 rows")

	require.NoError(t, h.run(t, "pivot", out))
	output := h.stdout.String()
	assert.Regexp(t, `Shopping\s+0\.00`, output)
	assert.Regexp(t, `Groceries\s+42\.50`, output)
	assert.Regexp(t, `Salary\s+2500\.00`, output)
	assert.NotContains(t, output, "No classification")
}

func TestClassify_MissingTaxonomy(t *testing.T) {
	h := newHarness(t)
	path := h.writeFile(t, "jan.csv", statement)

	err := h.run(t, "classify", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taxonomy")
}

func TestKeywordAdd_ResolvesTrack(t *testing.T) {
	h := newHarness(t)
	h.seedTaxonomy(t)

	require.NoError(t, h.run(t, "keyword", "add", "Salary", "ACME Corp"))
	assert.Contains(t, h.stdout.String(), "income category Salary")

	repo := repository.NewTaxonomyRepository(h.cfg.ExpenseFile, h.cfg.IncomeFile, zap.NewNop())
	income, err := repo.Table(context.Background(), models.TrackIncome)
	require.NoError(t, err)
	assert.Equal(t, []string{"payroll", "ACME Corp"}, income[0].Keywords)

	err = h.run(t, "keyword", "add", "Travel", "delta")
	assert.Error(t, err)
}

func TestCategoryAddAndOptions(t *testing.T) {
	h := newHarness(t)
	h.seedTaxonomy(t)

	require.NoError(t, h.run(t, "category", "add", "Dining", "chipotle"))
	require.NoError(t, h.run(t, "options"))
	assert.Equal(t, "Dining\nGroceries\nShopping\n", h.stdout.String())

	require.NoError(t, h.run(t, "category", "add", "Dividends", "vanguard", "--type", "income"))
	require.NoError(t, h.run(t, "options", "--type", "income"))
	assert.Equal(t, "Dividends\nSalary\n", h.stdout.String())

	assert.Error(t, h.run(t, "category", "add", "Dining", "other"))
}

func TestSeed(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "seed"))
	assert.Contains(t, h.stdout.String(), "Default taxonomy written")
	assert.FileExists(t, h.cfg.ExpenseFile)
	assert.FileExists(t, h.cfg.IncomeFile)

	require.NoError(t, h.run(t, "seed"))
	assert.Contains(t, h.stdout.String(), "already present")

	require.NoError(t, h.run(t, "seed", "--force"))
	assert.Contains(t, h.stdout.String(), "Default taxonomy written")
}

func TestGlobalFlagsOverrideDefaults(t *testing.T) {
	h := newHarness(t)
	expense := filepath.Join(h.dir, "other", "expense.json")
	income := filepath.Join(h.dir, "other", "income.json")

	require.NoError(t, h.run(t, "--expense-file", expense, "--income-file", income, "seed"))
	assert.FileExists(t, expense)
	assert.FileExists(t, income)
	assert.NoFileExists(t, h.cfg.ExpenseFile)
}

func TestClassify_OutFileErrorsAreReturned(t *testing.T) {
	h := newHarness(t)
	h.seedTaxonomy(t)
	path := h.writeFile(t, "jan.csv", statement)

	err := h.run(t, "classify", path, "--out", filepath.Join(h.dir, "missing", "out.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := []models.Row{{Date: "01/03/2025", Activity: "WALMART", Classification: "Groceries"}}

	require.NoError(t, writeCSVFile(path, rows))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "01/03/2025,WALMART,0,0,0,Groceries\n", string(data))
}
