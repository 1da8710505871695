package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/repository"
	"github.com/lifeline-labs/organ-backend-go/internal/service"
	"github.com/lifeline-labs/organ-backend-go/pkg/response"
)

func navigationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	nav := service.NewNavigationService(
		service.NewRoutingService(zap.NewNop()),
		repository.NewMemorySessionStore(),
		zap.NewNop(),
	)
	h := NewNavigationHandler(nav)

	r := gin.New()
	r.POST("/api/v1/navigation/start", h.Start)
	r.GET("/api/v1/navigation/:id", h.Get)
	r.PUT("/api/v1/navigation/:id/update", h.Update)
	r.POST("/api/v1/navigation/:id/end", h.End)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func startPayload() map[string]interface{} {
	return map[string]interface{}{
		"user_id": "u1",
		"start":   map[string]float64{"latitude": 28.6139, "longitude": 77.2090},
		"end":     map[string]float64{"latitude": 19.0760, "longitude": 72.8777},
	}
}

func TestStartEndScenario(t *testing.T) {
	r := navigationRouter()

	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/navigation/start", startPayload())
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope.Data.(map[string]interface{})
	navID := data["navigation_id"].(string)
	assert.NotEmpty(t, navID)
	assert.Equal(t, "active", data["status"])

	step := data["current_step"].(map[string]interface{})
	assert.Equal(t, "Start navigation to destination", step["instruction"])

	// Ending immediately reports zero whole minutes
	w, envelope = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/navigation/%s/end", navID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := envelope.Data.(map[string]interface{})
	assert.Equal(t, "completed", summary["status"])
	assert.Equal(t, float64(0), summary["duration_minutes"])
}

func TestUpdateFlow(t *testing.T) {
	r := navigationRouter()

	_, envelope := doJSON(t, r, http.MethodPost, "/api/v1/navigation/start", startPayload())
	navID := envelope.Data.(map[string]interface{})["navigation_id"].(string)

	w, envelope := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/navigation/%s/update", navID), map[string]interface{}{
		"position": map[string]float64{"latitude": 23.0, "longitude": 75.0},
	})
	require.Equal(t, http.StatusOK, w.Code)

	progress := envelope.Data.(map[string]interface{})
	assert.Greater(t, progress["remaining_distance_km"].(float64), 0.0)
	assert.Equal(t, float64(0), progress["current_step"])
	assert.Equal(t, "active", progress["status"])
}

func TestUpdateUnknownSessionReturns404(t *testing.T) {
	r := navigationRouter()

	w, envelope := doJSON(t, r, http.MethodPut, "/api/v1/navigation/nav_missing/update", map[string]interface{}{
		"position": map[string]float64{"latitude": 23.0, "longitude": 75.0},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Navigation session not found", envelope.Error)
}

func TestEndUnknownSessionReturns404(t *testing.T) {
	r := navigationRouter()

	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/navigation/nav_missing/end", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Navigation session not found", envelope.Error)
}

func TestStartRejectsMissingBody(t *testing.T) {
	r := navigationRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/navigation/start", map[string]interface{}{"user_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartAcceptsZeroCoordinates(t *testing.T) {
	// The equator/prime-meridian origin is a valid coordinate, not an
	// omitted field
	r := navigationRouter()

	payload := startPayload()
	payload["start"] = map[string]float64{"latitude": 0.0, "longitude": 0.0}

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/navigation/start", payload)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStartRejectsInvalidCoordinates(t *testing.T) {
	r := navigationRouter()

	payload := startPayload()
	payload["start"] = map[string]float64{"latitude": 95.0, "longitude": 0.0}

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/navigation/start", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
