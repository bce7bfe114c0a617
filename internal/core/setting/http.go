// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/respond"
)

// Handler implements the HTTP layer for public settings.
type Handler struct {
	service *Service
}

// NewHandler constructs a new setting [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the settings routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/website", handler.getWebsite)
	return router
}

/*
GET /api/settings/website.

Response:
  - 200: Website
*/
func (handler *Handler) getWebsite(writer http.ResponseWriter, request *http.Request) {
	website, err := handler.service.Website(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, website)
}
