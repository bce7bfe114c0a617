// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/respond"
)

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	probes []Probe
	logger *slog.Logger
}

// NewHealthHandlers creates the /health and /ready handlers. /ready runs
// every probe and answers 503 when any fails.
func NewHealthHandlers(logger *slog.Logger, probes ...Probe) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{probes: probes, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness handles GET /ready.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, len(handler.probes))
	ready := true

	for _, probe := range handler.probes {
		ctx, cancel := context.WithTimeout(request.Context(), constants.ReadinessTimeout)
		err := probe.Check(ctx)
		cancel()

		result := checkResult{Name: probe.Name, IsOK: err == nil}
		if err != nil {
			ready = false
			result.Error = err.Error()
			handler.logger.Error("readiness_check_failed", slog.String("dependency", probe.Name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, code, respond.SuccessEnvelope{Data: map[string]any{
		"status": status,
		"checks": results,
	}})
}
