package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstlens/internal/domain"
	"gstlens/internal/recon"
	"gstlens/internal/service"
	"gstlens/mocks"
)

func analysisRouter(repo *mocks.MockCatalogRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewAnalysisService(repo, recon.Config{DefaultGSTRate: 5.0})
	h := NewAnalysisHandler(svc)

	r := gin.New()
	r.POST("/api/v1/bills/analyze", h.AnalyzeBill)
	return r
}

func TestAnalyzeBillEndpoint(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("Lookup", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	r := analysisRouter(repo)

	body := `{
		"store_name": "Saravana Bhavan",
		"bill_number": "12345",
		"items": [
			{"item_name": "Masala Dosa", "quantity": 2, "total_price": 120},
			{"item_name": "Idli", "quantity": 4, "total_price": 50},
			{"item_name": "Parotta", "quantity": 3, "total_price": 60}
		],
		"gross_amount": 230,
		"subtotal": 230,
		"total_gst_charged": 11.50,
		"grand_total": 241.50
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    domain.BillAnalysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.Discrepancy.Found)
	assert.InDelta(t, 3.00, resp.Data.Discrepancy.Amount, 0.001)
	assert.InDelta(t, 8.50, resp.Data.CorrectCalculation.TotalGST, 0.001)
	assert.Len(t, resp.Data.Items, 3)
}

func TestAnalyzeBillEndpointBadBody(t *testing.T) {
	r := analysisRouter(new(mocks.MockCatalogRepo))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills/analyze", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

// An empty but valid record still analyzes; data-quality problems are
// warnings, not HTTP errors.
func TestAnalyzeBillEndpointEmptyRecord(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("Lookup", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	r := analysisRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills/analyze", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data domain.BillAnalysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
	assert.Zero(t, resp.Data.CorrectCalculation.TotalGST)
	assert.NotEmpty(t, resp.Data.Warnings)
}
