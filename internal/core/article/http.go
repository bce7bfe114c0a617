// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
The HTTP interface for articles and the RSS feed.

# Routing Strategy

  - Public: listing, detail and feed. Contributors and above also see
    scheduled articles.
  - Restricted (EDITOR+): create, update and delete. Update and delete
    additionally require ownership or ADMIN.
*/

package article

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for article operations.
type Handler struct {
	service *Service
	feed    *FeedBuilder
}

// NewHandler constructs a new article [Handler].
func NewHandler(service *Service, feed *FeedBuilder) *Handler {
	return &Handler{service: service, feed: feed}
}

// Routes returns a [chi.Router] configured with article endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))

		editor.Post("/", handler.createArticle)
		editor.Post("/{id}", handler.updateArticle)
		editor.Post("/{id}/delete", handler.deleteArticle)
	})

	return router
}

// FeedRoutes returns the router mounted at /feed.
func (handler *Handler) FeedRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, "/feed/articles", http.StatusFound)
	})
	router.Get("/articles", handler.articleFeed)

	return router
}

/*
GET /api/articles.

Request (Query):
  - page, limit: int (optional)

Response:
  - 200: Page
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.List(request.Context(), requestutil.Claims(request), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}

/*
ListByCategory serves GET /api/categories/{id}/articles. It is mounted on
the category router.

Response:
  - 200: Page of published articles
  - 404: Category not found
*/
func (handler *Handler) ListByCategory(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ListByCategory(request.Context(), requestutil.Param(request, "id"), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}

/*
GET /api/articles/{id}.

Request (Query):
  - format: "html" renders the content (optional)

Response:
  - 200: Article with content
  - 404: Missing, or scheduled and caller below contributor
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.Get(request.Context(),
		requestutil.Claims(request),
		requestutil.Param(request, "id"),
		request.URL.Query().Get("format"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

/*
POST /api/articles.

Request (Body):
  - category_id, name, description, content: string (required)
  - tags: string (optional, comma separated)
  - publish_at: int epoch ms (optional)
  - image: base64 string (optional)

Response:
  - 201: Article
  - 400: Validation failure
  - 404: Category not found
*/
func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Create(request.Context(), requestutil.Claims(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, article)
}

/*
POST /api/articles/{id}.

Request (Body): any subset of the create fields.

Response:
  - 200: Article
  - 400: Provided field is empty
  - 403: Not the author nor ADMIN
  - 404: Article or category not found
*/
func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Update(request.Context(), requestutil.Claims(request), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

/*
POST /api/articles/{id}/delete.

Response:
  - 200: {"id": "..."}
  - 403: Not the author nor ADMIN
  - 404: Article not found
*/
func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), requestutil.Claims(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldID: id})
}

/*
GET /feed/articles.

Response:
  - 200: RSS 2.0 document, cacheable for one hour
*/
func (handler *Handler) articleFeed(writer http.ResponseWriter, request *http.Request) {
	body, err := handler.feed.Feed(request.Context(), request.Host)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	maxAge := int(constants.FeedMaxAge.Seconds())
	writer.Header().Set(constants.HeaderCacheControl, "max-age="+strconv.Itoa(maxAge))
	respond.XML(writer, body)
}
