package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_NotReadyBeforeStartup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler(service.NewHealthService(nil, nil))
	r := gin.New()
	r.GET("/health/liveness", h.Liveness)
	r.GET("/health/readiness", h.Readiness)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not ready")
}

func TestRPC_InvalidJSONIsReportedInEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRPCHandler(&telemetry.Trace{}, nil)
	r := gin.New()
	r.POST("/api/rpc", h.Call)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rpc", bytes.NewBufferString("{action:")))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid JSON body", body["message"])
}
