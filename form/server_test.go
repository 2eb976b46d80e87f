// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package form

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return NewServer().Router()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestIndexView(t *testing.T) {
	router := setupServerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "rumbo")
}

func TestConvertTable(t *testing.T) {
	router := setupServerTest(t)

	w := postJSON(t, router, "/api/convert", map[string]any{
		"text": "lat\tlon\n45.5\t-122.3\nabc\t-122.3\n",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp convertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Lines, 3)
	assert.Equal(t, "lat\tlon", resp.Lines[0])
	assert.Contains(t, resp.Lines[1], "45.500000N")
	assert.Contains(t, resp.Lines[2], "#PARSE_ERROR:unparsable")
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, 1, resp.Failed)
}

func TestConvertTableValidation(t *testing.T) {
	router := setupServerTest(t)

	w := postJSON(t, router, "/api/convert", map[string]any{"text": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/convert", map[string]any{"text": "45.5 1", "h3": 99})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParsePair(t *testing.T) {
	router := setupServerTest(t)

	w := postJSON(t, router, "/api/parse", map[string]any{
		"text": `45°30'15"N 122°20'W`,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Lat axisResult `json:"lat"`
		Lon axisResult `json:"lon"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.Lat.Forms)
	assert.Equal(t, "45.504167", resp.Lat.Forms.Decimal)
	require.NotNil(t, resp.Lon.Forms)
	assert.Equal(t, "-122.333333", resp.Lon.Forms.Decimal)
}

func TestParsePairLonFirst(t *testing.T) {
	router := setupServerTest(t)

	w := postJSON(t, router, "/api/parse", map[string]any{
		"text":  "-122.3 45.5",
		"order": "lonlat",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Lat axisResult `json:"lat"`
		Lon axisResult `json:"lon"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.Lat.Forms)
	assert.Equal(t, "45.500000", resp.Lat.Forms.Decimal)
	require.NotNil(t, resp.Lon.Forms)
	assert.Equal(t, "-122.300000", resp.Lon.Forms.Decimal)
}

func TestParsePairFailures(t *testing.T) {
	router := setupServerTest(t)

	// One bad axis: 422 with the reason inside the payload.
	w := postJSON(t, router, "/api/parse", map[string]any{"text": "91 -122.3"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Lat axisResult `json:"lat"`
		Lon axisResult `json:"lon"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Lat.Error, "out-of-range")
	assert.NotNil(t, resp.Lon.Forms)

	// Not a pair at all: transport-level 400.
	w = postJSON(t, router, "/api/parse", map[string]any{"text": "45.5"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/parse", map[string]any{"text": "1 2", "order": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
