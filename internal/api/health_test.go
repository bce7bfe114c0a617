// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/internal/api"
)

func TestReadiness(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	healthy := api.Probe{Name: "postgres", Check: func(context.Context) error { return nil }}
	broken := api.Probe{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }}

	_, ready := api.NewHealthHandlers(logger, healthy)
	recorder := httptest.NewRecorder()
	ready(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ready"`)

	_, degraded := api.NewHealthHandlers(logger, healthy, broken)
	recorder = httptest.NewRecorder()
	degraded(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"error":"connection refused"`)
}

func TestLiveness(t *testing.T) {
	live, _ := api.NewHealthHandlers(slog.New(slog.NewTextHandler(io.Discard, nil)))

	recorder := httptest.NewRecorder()
	live(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, recorder.Body.String())
}
