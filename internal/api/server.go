// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires the HTTP router, middleware chain and domain handlers into
a runnable [http.Server]. It is the composition root of the transport layer.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/inkwell/internal/core/article"
	"github.com/taibuivan/inkwell/internal/core/attachment"
	"github.com/taibuivan/inkwell/internal/core/category"
	"github.com/taibuivan/inkwell/internal/core/setting"
	"github.com/taibuivan/inkwell/internal/platform/config"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/middleware"
	"github.com/taibuivan/inkwell/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the domain HTTP handlers.
type Handlers struct {
	Liveness   http.HandlerFunc
	Readiness  http.HandlerFunc
	Auth       *auth.Handler
	Setting    *setting.Handler
	Category   *category.Handler
	Article    *article.Handler
	Attachment *attachment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. ctx bounds background work such as the rate
// limiter sweeper.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()
	limiter := middleware.NewRateLimiter(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Handler)
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/settings", h.Setting.Routes())

		categories := h.Category.Routes()
		categories.Get("/{id}/articles", h.Article.ListByCategory)
		api.Mount("/categories", categories)

		api.Mount("/articles", h.Article.Routes())
		api.Mount("/attachments", h.Attachment.Routes())
	})

	r.Mount("/feed", h.Article.FeedRoutes())

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server. It blocks until the server is
// closed or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
