package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emushim/controlview/internal/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLayouts(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/layouts", nil)
	rec := httptest.NewRecorder()

	handleLayouts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summaries []layoutSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 3)

	byName := map[string]layoutSummary{}
	for _, s := range summaries {
		byName[s.Name] = s
	}
	assert.Equal(t, 2, byName["nes"].PlayerCount)
	assert.Equal(t, 1, byName["gameboy"].PlayerCount)
	assert.Equal(t, "Dual Analog Controller", byName["dual-analog"].Title)
}

func TestHandleLayout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/layouts/{name}", handleLayout)

	req := httptest.NewRequest(http.MethodGet, "/api/layouts/dual-analog", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload hub.SchemaPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Dual Analog Controller", payload.Name)
	assert.Len(t, payload.Groups, 3)
	assert.Contains(t, payload.Ranges, "P2 Stick Y")
}

func TestHandleLayout_Unknown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/layouts/{name}", handleLayout)

	req := httptest.NewRequest(http.MethodGet, "/api/layouts/neo-geo", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
