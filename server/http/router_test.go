package serverhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-scan-service/internal/config"
	"invoice-scan-service/internal/scan/model"
)

func testRouter() http.Handler {
	cfg := config.Config{
		AllowOrigins:  []string{"*"},
		MaxUploadMB:   8,
		MaxCandidates: 120,
	}
	return NewRouter(cfg, zerolog.Nop())
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_ScanNormalize(t *testing.T) {
	body := `{
		"items": [{"productName": "41901-2", "quantity": 2, "unitPrice": 10, "totalAmount": 0}],
		"saleDate": "25-03-2026",
		"candidateProducts": ["41901-2"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/scan/normalize", strings.NewReader(body))
	req.Header.Set("X-Request-ID", "test-rid")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-rid", rec.Header().Get("X-Request-ID"))

	var res model.ScanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, 20.0, res.Items[0].TotalAmount)
	assert.Equal(t, "2026-03-25", res.SaleDate)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scan/normalize", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/scan/normalize", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
