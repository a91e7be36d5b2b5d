package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"finsort/internal/api"
	"finsort/internal/api/handlers"
	"finsort/internal/classifier"
	"finsort/internal/models"
	"finsort/internal/repository"
	"finsort/internal/service"
	"finsort/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()

	repo := repository.NewTaxonomyRepository(
		filepath.Join(dir, "expense_classification.json"),
		filepath.Join(dir, "income_classification.json"),
		logger,
	)
	require.NoError(t, repo.Save(context.Background(), models.Taxonomy{
		Expense: []models.Category{
			{Name: "Shopping", Keywords: []string{"amazon"}},
			{Name: "Groceries", Keywords: []string{"walmart"}},
		},
		Income: []models.Category{
			{Name: "Salary", Keywords: []string{"payroll"}},
		},
	}))

	store := repository.NewJSONFileStore(filepath.Join(dir, "file_store.json"), logger)
	taxonomyService := service.NewTaxonomyService(repo, logger)
	importService := service.NewImportService(taxonomyService, store, classifier.DefaultOptions(), logger)
	fileService := service.NewFileService(store, logger)

	return api.SetupRouter(
		handlers.NewImportHandler(importService, logger),
		handlers.NewTaxonomyHandler(taxonomyService, logger),
		handlers.NewFileHandler(fileService, importService, logger),
		&config.ServerConfig{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			BodyLimitMB:  1,
			AllowOrigins: "*",
		},
		logger,
	)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return do(t, app, req)
}

func upload(t *testing.T, app *fiber.App, name, content string) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploadcsv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return do(t, app, req)
}

type uploadBody struct {
	Parsed []map[string]any `json:"parsed"`
	Rem    []map[string]any `json:"rem_class"`
	FileID string           `json:"fileId"`
}

const statement = `01/03/2025,WALMART,42.50,,1957.50
01/04/2025,Costco,80.00,,1877.50
01/05/2025,Payroll,,2500.00,4377.50
`

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	status, body := doJSON(t, app, http.MethodGet, "/healthz", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestUploadCSV(t *testing.T) {
	app := newTestApp(t)

	status, body := upload(t, app, "jan.csv", statement)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var res uploadBody
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Parsed, 3)
	require.Len(t, res.Rem, 1)
	assert.Equal(t, "Costco", res.Rem[0]["activity"])
	assert.Equal(t, float64(1), res.Rem[0]["idx"])
	assert.Equal(t, float64(80), res.Rem[0]["expense"])
	_, err := uuid.Parse(res.FileID)
	require.NoError(t, err)

	status, body = doJSON(t, app, http.MethodGet, "/files/"+res.FileID, nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	var file map[string]any
	require.NoError(t, json.Unmarshal(body, &file))
	assert.Equal(t, "jan.csv", file["file_name"])
	assert.Len(t, file["rows"], 3)
	assert.Nil(t, file["folder_id"])
}

func TestUploadCSV_AllMatchedOmitsRemClass(t *testing.T) {
	app := newTestApp(t)

	status, body := upload(t, app, "feb.csv", "02/01/2025,AMAZON,12.00,,100\n")
	require.Equal(t, fiber.StatusOK, status)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.NotContains(t, raw, "rem_class")
	assert.Contains(t, raw, "fileId")
}

func TestUploadCSV_Errors(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/uploadcsv", nil)
	status, _ := do(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := doJSON(t, app, http.MethodPost, "/reclassify", map[string]any{"date": "01/03/2025"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "error")
}

func TestUploadCSV_CoercesAwkwardCells(t *testing.T) {
	app := newTestApp(t)

	content := "01/03/2025,MACY\"S,12.00,,100\n01/04/2025,WALMART,1e30000000,,1e400\n"
	status, body := upload(t, app, "awkward.csv", content)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var res uploadBody
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Parsed, 2)
	require.Len(t, res.Rem, 1)
	assert.Equal(t, "MACY\"S", res.Rem[0]["activity"])
	for _, row := range res.Parsed {
		if row["activity"] == "WALMART" {
			assert.Equal(t, float64(0), row["expense"])
			assert.Equal(t, float64(0), row["total"])
		}
	}
}

func TestReclassifyAfterCorrection(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/addnewvalue", map[string]string{
		"classification": "Groceries",
		"activity":       "Costco",
	})
	require.Equal(t, fiber.StatusOK, status, string(body))

	rows := []map[string]any{
		{"date": "01/04/2025", "activity": "Costco", "expense": 80, "income": 0, "total": 1877.5, "classification": "No classification"},
		{"date": "01/05/2025", "activity": "Payroll", "expense": 0, "income": "2500", "total": 4377.5, "classification": "Salary"},
	}
	status, body = doJSON(t, app, http.MethodPost, "/reclassify", rows)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var res uploadBody
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Empty(t, res.Rem)
	assert.Empty(t, res.FileID)
	require.Len(t, res.Parsed, 2)
	assert.Equal(t, "Groceries", res.Parsed[0]["classification"])
	assert.Equal(t, "Salary", res.Parsed[1]["classification"])
}

func TestPivotTable(t *testing.T) {
	app := newTestApp(t)

	rows := []any{
		[]any{"01/03/2025", "WALMART", 42.5, 0, "Groceries"},
		[]any{"01/06/2025", "Walmart", 7.5, 0, "Groceries"},
		[]any{"01/05/2025", "Payroll", 0, 2500, "Salary"},
		map[string]any{"date": "01/07/2025", "activity": "?", "expense": 3, "classification": "No classification"},
	}
	status, body := doJSON(t, app, http.MethodPost, "/pivot-table", rows)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.JSONEq(t, `[["Shopping",0],["Groceries",50],["Salary",2500]]`, string(body))
}

func TestOptions(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/expense-options", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"options":["Groceries","Shopping"]}`, string(body))

	status, body = doJSON(t, app, http.MethodGet, "/income-options", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"options":["Salary"]}`, string(body))
}

func TestAddKeyword_Errors(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/addnewvalue", map[string]string{"classification": "Groceries"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/addnewvalue", map[string]string{
		"classification": "Travel",
		"activity":       "Delta",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAddCategory(t *testing.T) {
	app := newTestApp(t)

	req := map[string]string{
		"new_classification": "Dividends",
		"selected_activity":  "Vanguard",
		"chosen_type":        "income",
	}
	status, body := doJSON(t, app, http.MethodPost, "/addnewclassification", req)
	require.Equal(t, fiber.StatusOK, status, string(body))

	status, body = doJSON(t, app, http.MethodGet, "/income-options", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"options":["Dividends","Salary"]}`, string(body))

	status, _ = doJSON(t, app, http.MethodPost, "/addnewclassification", req)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestFiles_NotFoundAndBadID(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/files/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(body), "error")

	status, _ = doJSON(t, app, http.MethodGet, "/files/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestReclassifyStoredFile(t *testing.T) {
	app := newTestApp(t)

	status, body := upload(t, app, "jan.csv", statement)
	require.Equal(t, fiber.StatusOK, status)
	var uploaded uploadBody
	require.NoError(t, json.Unmarshal(body, &uploaded))
	require.Len(t, uploaded.Rem, 1)

	status, _ = doJSON(t, app, http.MethodPost, "/addnewvalue", map[string]string{
		"classification": "Shopping",
		"activity":       "Costco",
		"type":           "expense",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, http.MethodPost, "/files/"+uploaded.FileID+"/reclassify", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	var res uploadBody
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Empty(t, res.Rem)
	assert.Equal(t, uploaded.FileID, res.FileID)
	require.Len(t, res.Parsed, 3)

	status, body = doJSON(t, app, http.MethodGet, "/files/"+uploaded.FileID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var file struct {
		Rows   []map[string]any `json:"rows"`
		Totals json.RawMessage  `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(body, &file))
	labels := map[string]any{}
	for _, row := range file.Rows {
		labels[row["activity"].(string)] = row["classification"]
	}
	assert.Equal(t, "Shopping", labels["Costco"])
	assert.JSONEq(t, `[["Shopping",80],["Groceries",42.5],["Salary",2500]]`, string(file.Totals))

	status, body = doJSON(t, app, http.MethodPost, "/files/"+uuid.NewString()+"/reclassify", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(body), "error")

	status, _ = doJSON(t, app, http.MethodPost, "/files/not-a-uuid/reclassify", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestFoldersAndFileMoves(t *testing.T) {
	app := newTestApp(t)

	status, body := upload(t, app, "jan.csv", statement)
	require.Equal(t, fiber.StatusOK, status)
	var res uploadBody
	require.NoError(t, json.Unmarshal(body, &res))

	status, body = doJSON(t, app, http.MethodPost, "/folders", map[string]any{"name": "2025"})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	var folder map[string]any
	require.NoError(t, json.Unmarshal(body, &folder))
	folderID := folder["id"].(string)

	status, _ = doJSON(t, app, http.MethodPost, "/files/"+res.FileID+"/move", map[string]any{"folder_id": folderID})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPatch, "/files/"+res.FileID, map[string]any{"name": "January"})
	require.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, "/files", nil)
	require.Equal(t, fiber.StatusOK, status)
	var lib struct {
		Files []map[string]any `json:"files"`
	}
	require.NoError(t, json.Unmarshal(body, &lib))
	require.Len(t, lib.Files, 1)
	assert.Equal(t, "January", lib.Files[0]["file_name"])
	assert.Equal(t, folderID, lib.Files[0]["folder_id"])
	assert.NotContains(t, lib.Files[0], "rows")

	status, _ = doJSON(t, app, http.MethodPost, "/folders/"+folderID+"/move", map[string]any{"parent_id": folderID})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/folders/"+folderID, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, "/files/"+res.FileID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var file map[string]any
	require.NoError(t, json.Unmarshal(body, &file))
	assert.Nil(t, file["folder_id"])

	status, body = doJSON(t, app, http.MethodGet, "/files/"+res.FileID+"/totals", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[["Shopping",0],["Groceries",42.5],["Salary",2500]]`, string(body))

	status, _ = doJSON(t, app, http.MethodDelete, "/files/"+res.FileID, nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodGet, "/files/"+res.FileID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
