// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
The HTTP interface for categories.

# Routing Strategy

  - Public: listing and detail views.
  - Restricted (ADMIN): create, update, sort and delete.

Mutations use POST with action suffixes (/sort, /{id}/delete).
*/

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer for category operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with category endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)

	// ## Administrative
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createCategory)
		admin.Post("/sort", handler.sortCategories)
		admin.Post("/{id}", handler.updateCategory)
		admin.Post("/{id}/delete", handler.deleteCategory)
	})

	return router
}

// ListResponse is the body of the list endpoint.
type ListResponse struct {
	Categories []*Category `json:"categories"`
}

// SortResponse acknowledges a reorder.
type SortResponse struct {
	Sort bool `json:"sort"`
}

/*
GET /api/categories.

Response:
  - 200: ListResponse ordered by display_order
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ListResponse{Categories: categories})
}

/*
GET /api/categories/{id}.

Response:
  - 200: Category
  - 404: Category not found
*/
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

/*
POST /api/categories.

Request (Body):
  - name: string (required)
  - description: string (optional)

Response:
  - 201: Category
  - 400: Missing name
  - 401/403: Not an administrator
*/
func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, category)
}

/*
POST /api/categories/sort.

Request (Body):
  - id: []string, a permutation of every category id (a single string is accepted)

Response:
  - 200: SortResponse
  - 400: Wrong length, duplicate or unknown id
*/
func (handler *Handler) sortCategories(writer http.ResponseWriter, request *http.Request) {
	var input SortInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Sort(request.Context(), input.IDs); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, SortResponse{Sort: true})
}

/*
POST /api/categories/{id}.

Request (Body):
  - name: string (optional, not empty)
  - description: string (optional)

Response:
  - 200: Category
  - 400: Empty name
  - 404: Category not found
*/
func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

/*
POST /api/categories/{id}/delete.

Response:
  - 200: {"id": "..."}
  - 404: Category not found
  - 409: Category still referenced by articles
*/
func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldID: id})
}
