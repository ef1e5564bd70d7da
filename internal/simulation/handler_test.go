package simulation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/export"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := NewService(engine.NewEngine(), engine.ProfileRIL25, zap.NewNop())
	handler := NewHandler(service, export.DefaultPDFOptions(), zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSimulateEndpoint(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/runs", SimulateRequest{
		Profile:    engine.ProfileRIL25,
		Operations: []engine.Operation{{Year: 0, IntensityPct: 10}},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result engine.RunResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Trajectory, 26)
	assert.InDelta(t, 270.0, result.Trajectory[1].Value, 1e-9)
	assert.Greater(t, result.Score.FinalScore, 0.0)
}

func TestSimulateEndpointRejectsInvalidPlan(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/runs", SimulateRequest{
		Operations: []engine.Operation{{Year: 0, IntensityPct: 150}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateEndpointUnknownProfile(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/runs", SimulateRequest{
		Profile: "ril-404",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateEndpointReturns200WithErrors(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/validate", SimulateRequest{
		Operations: []engine.Operation{{Year: 5, IntensityPct: 10}, {Year: 5, IntensityPct: 15}},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var results engine.ValidationResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.False(t, results.IsValid)
}

func TestValidateEndpointReportsOutOfRangeValuesNotBindErrors(t *testing.T) {
	router := newRouter(t)

	// Negative years and oversized intensities are validation findings,
	// not malformed requests; the endpoint stays 200.
	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/validate", SimulateRequest{
		Operations: []engine.Operation{{Year: -3, IntensityPct: 150}},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var results engine.ValidationResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.False(t, results.IsValid)
	assert.GreaterOrEqual(t, len(results.Errors), 2)
}

func TestProfilesEndpoints(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/simulation/profiles", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Profiles []ProfileSummary `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Profiles, 2)

	w = doJSON(t, router, http.MethodGet, "/api/v1/simulation/profiles/ril-25", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var d ProfileDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, 0.0825, d.RecoveryK)
	require.Len(t, d.ThresholdLines, 2)
	assert.Equal(t, 285.0, d.ThresholdLines[0].Carbon)

	w = doJSON(t, router, http.MethodGet, "/api/v1/simulation/profiles/ril-404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPresetsEndpoint(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/simulation/profiles/ril-25/presets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "default_plan")
	assert.Contains(t, w.Body.String(), "no-logging")
}

func TestComparisonEndpoint(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/simulation/profiles/ril-100/comparison", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "final_score")
}

func TestExportRunCSV(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/runs/export/csv", SimulateRequest{
		Operations: []engine.Operation{{Year: 0, IntensityPct: 10}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "year,baseline,carbon,difference"))
}

func TestExportRunPDF(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/runs/export/pdf", SimulateRequest{
		Operations: []engine.Operation{{Year: 0, IntensityPct: 10}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestExportUnsupportedFormat(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/simulation/runs/export/docx", SimulateRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/simulation/profiles/ril-25/comparison/export/docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportComparisonXLSX(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/simulation/profiles/ril-25/comparison/export/xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
}
