// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attachment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
)

// Handler implements the HTTP layer for attachment metadata.
type Handler struct {
	service *Service
}

// NewHandler constructs a new attachment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the attachment routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.getAttachment)
	return router
}

/*
GET /api/attachments/{id}.

Response:
  - 200: Attachment
  - 404: Attachment not found
*/
func (handler *Handler) getAttachment(writer http.ResponseWriter, request *http.Request) {
	attachment, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, attachment)
}
