// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/article"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

func doRequest(t *testing.T, router http.Handler, method, path, body string, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(context.Background(), claims))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func newRouter(f *fixture) http.Handler {
	handler := article.NewHandler(f.service, newFeed(f))

	router := chi.NewRouter()
	router.Mount("/api/articles", handler.Routes())
	router.Get("/api/categories/{id}/articles", handler.ListByCategory)
	router.Mount("/feed", handler.FeedRoutes())
	return router
}

func TestHandler_ScheduledArticleHiddenFromReaders(t *testing.T) {
	router := newRouter(newFixture(stored("future", "owner", time.Minute)))

	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/api/articles/future", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/api/articles/future", "", subscriber).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodGet, "/api/articles/future", "", contributor).Code)
}

func TestHandler_ListEnvelope(t *testing.T) {
	router := newRouter(newFixture(stored("a1", "owner", -time.Minute)))

	recorder := doRequest(t, router, http.MethodGet, "/api/articles?page=1&limit=5", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data article.Page `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data.Articles, 1)
	assert.Equal(t, 5, body.Data.Page.Limit)
	assert.Equal(t, 1, body.Data.Page.Total)
}

func TestHandler_ListByCategory(t *testing.T) {
	router := newRouter(newFixture(stored("a1", "owner", -time.Minute)))

	assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodGet, "/api/categories/news/articles", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/api/categories/gone/articles", "", nil).Code)
}

func TestHandler_CreateRequiresEditor(t *testing.T) {
	f := newFixture()
	router := newRouter(f)
	payload := `{"category_id":"news","name":"N","description":"D","content":"C","tags":"x, y"}`

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, http.MethodPost, "/api/articles", payload, nil).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(t, router, http.MethodPost, "/api/articles", payload, contributor).Code)

	recorder := doRequest(t, router, http.MethodPost, "/api/articles", payload, owner)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"tags":"x,y"`)
}

func TestHandler_UpdateByNonOwnerForbidden(t *testing.T) {
	router := newRouter(newFixture(stored("a1", "owner", -time.Minute)))

	recorder := doRequest(t, router, http.MethodPost, "/api/articles/a1", `{"name":"x"}`, otherEditor)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"FORBIDDEN"`)
}

func TestHandler_Delete(t *testing.T) {
	router := newRouter(newFixture(stored("a1", "owner", -time.Minute)))

	recorder := doRequest(t, router, http.MethodPost, "/api/articles/a1/delete", "", admin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":"a1"}}`, recorder.Body.String())
}

func TestHandler_Feed(t *testing.T) {
	router := newRouter(newFixture(stored("a1", "owner", -time.Minute)))

	recorder := doRequest(t, router, http.MethodGet, "/feed/articles", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/xml; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=3600", recorder.Header().Get("Cache-Control"))
	assert.True(t, strings.HasPrefix(recorder.Body.String(), "<?xml version=\"1.0\"?>\n<rss"))
}

func TestHandler_FeedRedirect(t *testing.T) {
	router := newRouter(newFixture())

	recorder := doRequest(t, router, http.MethodGet, "/feed", "", nil)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/feed/articles", recorder.Header().Get("Location"))
}
