// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"gopkg.in/macaron.v1"

	"github.com/mojidet/mojidet/internal/detect"
)

func newTestServer() *macaron.Macaron {
	m := macaron.New()
	m.Use(macaron.Renderer())
	RegisterRoutes(m)
	return m
}

func TestHealthz(t *testing.T) {
	m := newTestServer()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	m.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", resp.Body.String())
}

func TestDetect(t *testing.T) {
	m := newTestServer()

	body, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("きょうはいいてんきですね"))
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", bytes.NewReader(body))
	m.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var result detect.Result
	require.NoError(t, jsoniter.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, detect.CharsetShiftJIS, result.Charset)
	assert.Greater(t, result.Confidence, 0.9)
}

func TestDetect_NotDetected(t *testing.T) {
	m := newTestServer()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", bytes.NewReader([]byte{0x82, 0x33}))
	m.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
