package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/export"
	"go-konkurs-assistant/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fakeRun(rows []models.ResultRow, err error) RunFunc {
	return func(ctx context.Context, apiKey, phrase string, scrolls int) ([]models.ResultRow, error) {
		return rows, err
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleRows() []models.ResultRow {
	return []models.ResultRow{
		{Link: "https://fb.com/p/1", Content: "Konkurs!", Task: "Polub post", Venue: "Komentarz", Deadline: "2025-03-20"},
	}
}

func TestSearch_PopulatesTable(t *testing.T) {
	srv := New(&config.Config{ScrollCount: 5}, fakeRun(sampleRows(), nil))
	router := srv.Router()

	w := doJSON(t, router, http.MethodPost, "/api/search", searchRequest{
		APIKey:       "key",
		SearchPhrase: "konkurs",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/results", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count   int                `json:"count"`
		Results []models.ResultRow `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Polub post", resp.Results[0].Task)
}

func TestSearch_RequiresAPIKey(t *testing.T) {
	srv := New(&config.Config{}, fakeRun(nil, nil))
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/search", searchRequest{SearchPhrase: "konkurs"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "klucz API")
}

func TestSearch_RequiresPhrase(t *testing.T) {
	srv := New(&config.Config{GeminiAPIKey: "cfg-key"}, fakeRun(nil, nil))
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/search", searchRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "frazę")
}

func TestSearch_ConfigKeyFallback(t *testing.T) {
	var gotKey string
	run := func(ctx context.Context, apiKey, phrase string, scrolls int) ([]models.ResultRow, error) {
		gotKey = apiKey
		return nil, nil
	}
	srv := New(&config.Config{GeminiAPIKey: "cfg-key", ScrollCount: 3}, run)

	w := doJSON(t, srv.Router(), http.MethodPost, "/api/search", searchRequest{SearchPhrase: "konkurs"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cfg-key", gotKey)
}

func TestResults_EditLifecycle(t *testing.T) {
	srv := New(&config.Config{}, fakeRun(sampleRows(), nil))
	router := srv.Router()

	doJSON(t, router, http.MethodPost, "/api/search", searchRequest{APIKey: "k", SearchPhrase: "konkurs"})

	//edit the row
	edited := sampleRows()[0]
	edited.Task = "Zmienione zadanie"
	w := doJSON(t, router, http.MethodPut, "/api/results/0", edited)
	require.Equal(t, http.StatusOK, w.Code)

	//add a row
	w = doJSON(t, router, http.MethodPost, "/api/results", models.ResultRow{Link: "https://fb.com/p/2"})
	require.Equal(t, http.StatusOK, w.Code)

	//delete the first row
	w = doJSON(t, router, http.MethodDelete, "/api/results/0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/results", nil)
	var resp struct {
		Results []models.ResultRow `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "https://fb.com/p/2", resp.Results[0].Link)
}

func TestResults_UpdateOutOfRange(t *testing.T) {
	srv := New(&config.Config{}, fakeRun(nil, nil))
	w := doJSON(t, srv.Router(), http.MethodPut, "/api/results/42", models.ResultRow{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResults_InvalidIndex(t *testing.T) {
	srv := New(&config.Config{}, fakeRun(nil, nil))
	w := doJSON(t, srv.Router(), http.MethodDelete, "/api/results/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport_WritesSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wyniki.xlsx")
	srv := New(&config.Config{}, fakeRun(sampleRows(), nil))
	router := srv.Router()

	doJSON(t, router, http.MethodPost, "/api/search", searchRequest{APIKey: "k", SearchPhrase: "konkurs"})

	w := doJSON(t, router, http.MethodPost, "/api/export", exportRequest{Path: path})
	require.Equal(t, http.StatusOK, w.Code)

	loaded, err := export.LoadResults(path)
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), loaded)
}

func TestExport_EmptyTable(t *testing.T) {
	srv := New(&config.Config{}, fakeRun(nil, nil))
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/export", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	srv := New(&config.Config{}, fakeRun(nil, nil))
	w := doJSON(t, srv.Router(), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
