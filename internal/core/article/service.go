// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/inkwell/internal/core/attachment"
	"github.com/taibuivan/inkwell/internal/core/category"
	"github.com/taibuivan/inkwell/internal/core/text"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/internal/search"
	"github.com/taibuivan/inkwell/pkg/pagination"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// # Collaborators

// CategoryLookup resolves category ids. Satisfied by [*category.Service].
type CategoryLookup interface {
	Get(ctx context.Context, id string) (*category.Category, error)
}

// TextStore keeps content revisions. Satisfied by [*text.Service].
type TextStore interface {
	Get(ctx context.Context, id string) (*text.Text, error)
	Create(ctx context.Context, q postgres.Querier, refID, value string) (*text.Text, error)
	DeleteByRef(ctx context.Context, q postgres.Querier, refID string) error
}

// CoverStore stores cover images. Satisfied by [*attachment.Service].
type CoverStore interface {
	Create(ctx context.Context, q postgres.Querier, upload attachment.Upload) (*attachment.Attachment, error)
}

// Renderer turns markdown into HTML or plain text. Satisfied by [*markdown.Renderer].
type Renderer interface {
	ToHTML(source string) (string, error)
	ToText(source string) (string, error)
}

// # Service Layer

// Service orchestrates business rules for articles.
type Service struct {
	repo       Repository
	db         postgres.DB
	categories CategoryLookup
	texts      TextStore
	covers     CoverStore
	indexer    search.Indexer
	renderer   Renderer
	now        func() time.Time
}

// Deps groups the collaborators of [Service].
type Deps struct {
	Repo       Repository
	DB         postgres.DB
	Categories CategoryLookup
	Texts      TextStore
	Covers     CoverStore
	Indexer    search.Indexer
	Renderer   Renderer
}

// NewService constructs a new article [Service]. A nil indexer disables indexing.
func NewService(deps Deps) *Service {
	indexer := deps.Indexer
	if indexer == nil {
		indexer = search.Nop{}
	}

	return &Service{
		repo:       deps.Repo,
		db:         deps.DB,
		categories: deps.Categories,
		texts:      deps.Texts,
		covers:     deps.Covers,
		indexer:    indexer,
		renderer:   deps.Renderer,
		now:        time.Now,
	}
}

// # Queries

/*
List returns one page of articles, newest first.

Callers with at least contributor rights also see scheduled articles;
everyone else sees only articles already published.
*/
func (service *Service) List(ctx context.Context, caller *sec.AuthClaims, params pagination.Params) (*Page, error) {
	filter := Filter{}
	if !caller.Can(sec.RoleContributor) {
		filter.PublishedBefore = service.nowMillis()
	}
	return service.page(ctx, filter, params)
}

// ListByCategory returns one page of published articles of a category.
func (service *Service) ListByCategory(ctx context.Context, categoryID string, params pagination.Params) (*Page, error) {
	if _, err := service.categories.Get(ctx, categoryID); err != nil {
		return nil, err
	}
	return service.page(ctx, Filter{PublishedBefore: service.nowMillis(), CategoryID: categoryID}, params)
}

func (service *Service) page(ctx context.Context, filter Filter, params pagination.Params) (*Page, error) {
	total, err := service.repo.Count(ctx, service.db, filter)
	if err != nil {
		return nil, err
	}

	meta := params.Meta(total)
	if meta.IsEmpty() {
		return &Page{Page: meta, Articles: []*Article{}}, nil
	}

	articles, err := service.repo.List(ctx, service.db, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	return &Page{Page: meta, Articles: articles}, nil
}

// Recent returns up to limit published articles, newest first.
func (service *Service) Recent(ctx context.Context, limit int) ([]*Article, error) {
	return service.repo.List(ctx, service.db, Filter{PublishedBefore: service.nowMillis()}, limit, 0)
}

/*
Get returns an article with its content.

A scheduled article is reported as NOT_FOUND to callers below contributor
so its existence does not leak. format "html" renders the content.
*/
func (service *Service) Get(ctx context.Context, caller *sec.AuthClaims, id, format string) (*Article, error) {
	article, err := service.repo.FindByID(ctx, service.db, id)
	if err != nil {
		return nil, err
	}

	if !article.IsPublishedAt(service.now()) && !caller.Can(sec.RoleContributor) {
		return nil, apperr.NotFound(resourceName)
	}

	if err := service.attachContent(ctx, article); err != nil {
		return nil, err
	}

	if format == FormatHTML {
		rendered, err := service.renderer.ToHTML(article.Content)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		article.Content = rendered
	}

	return article, nil
}

// # Commands

/*
Create stores a new article authored by caller.

The optional cover, the first text revision and the article row are
written in one transaction. publish_at defaults to now.

Returns:
  - *Article: The stored article with content attached
  - error: VALIDATION_ERROR, NOT_FOUND (category) or persistence failures
*/
func (service *Service) Create(ctx context.Context, caller *sec.AuthClaims, input CreateInput) (*Article, error) {
	if !caller.Can(sec.RoleEditor) {
		return nil, apperr.Forbidden("Permission denied.")
	}

	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)

	validator := &validate.Validator{}
	validator.Required(FieldCategoryID, input.CategoryID).
		Required(FieldName, name).
		MaxLen(FieldName, name, MaxNameLength).
		Required(FieldDescription, description).
		MaxLen(FieldDescription, description, MaxDescriptionLength).
		Required(FieldContent, input.Content).
		MaxLen(FieldTags, input.Tags, MaxTagsLength).
		Custom(FieldPublishAt, input.PublishAt != nil && *input.PublishAt < 0, "Must be a positive timestamp")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	image, err := decodeImage(input.Image)
	if err != nil {
		return nil, err
	}

	if _, err := service.categories.Get(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := service.now().UTC()
	article := &Article{
		ID:          uuid.New(),
		UserID:      caller.UserID,
		UserName:    caller.UserName,
		CategoryID:  input.CategoryID,
		Name:        name,
		Description: description,
		Tags:        FormatTags(input.Tags),
		PublishAt:   now.UnixMilli(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.PublishAt != nil {
		article.PublishAt = *input.PublishAt
	}

	err = service.db.InTx(ctx, func(q postgres.Querier) error {
		if image != nil {
			cover, err := service.covers.Create(ctx, q, attachment.Upload{
				UserID: caller.UserID, Name: name, Description: description, Data: image,
			})
			if err != nil {
				return err
			}
			article.CoverID = cover.ID
		}

		content, err := service.texts.Create(ctx, q, article.ID, input.Content)
		if err != nil {
			return err
		}
		article.ContentID = content.ID

		return service.repo.Create(ctx, q, article)
	})
	if err != nil {
		return nil, err
	}

	article.Content = input.Content
	service.index(ctx, article)

	ctxutil.GetLogger(ctx).InfoContext(ctx, "article_created",
		slog.String("article_id", article.ID),
		slog.String("category_id", article.CategoryID),
		slog.Int64("publish_at", article.PublishAt),
	)

	return article, nil
}

/*
Update applies a partial update by the author or an administrator.

A provided category_id, name, description or content must not be empty;
tags may be cleared with "". New content is stored as a new text revision
and a new image as a new cover; previous ones are kept.
*/
func (service *Service) Update(ctx context.Context, caller *sec.AuthClaims, id string, input UpdateInput) (*Article, error) {
	if !caller.Can(sec.RoleEditor) {
		return nil, apperr.Forbidden("Permission denied.")
	}

	validator := &validate.Validator{}
	validator.NotBlank(FieldCategoryID, input.CategoryID).
		NotBlank(FieldName, input.Name).
		NotBlank(FieldDescription, input.Description).
		NotBlank(FieldContent, input.Content).
		NotBlank(FieldTags, input.Tags).
		Custom(FieldPublishAt, input.PublishAt != nil && *input.PublishAt < 0, "Must be a positive timestamp")
	if input.Name != nil {
		validator.MaxLen(FieldName, strings.TrimSpace(*input.Name), MaxNameLength)
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, strings.TrimSpace(*input.Description), MaxDescriptionLength)
	}
	if input.Tags != nil {
		validator.MaxLen(FieldTags, *input.Tags, MaxTagsLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var image []byte
	if input.Image != nil {
		decoded, err := decodeImage(*input.Image)
		if err != nil {
			return nil, err
		}
		image = decoded
	}

	article, err := service.repo.FindByID(ctx, service.db, id)
	if err != nil {
		return nil, err
	}

	if !canModify(caller, article) {
		return nil, apperr.Forbidden("Permission denied.")
	}

	if input.CategoryID != nil {
		if _, err := service.categories.Get(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		article.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		article.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		article.Description = strings.TrimSpace(*input.Description)
	}
	if input.Tags != nil {
		article.Tags = FormatTags(*input.Tags)
	}
	if input.PublishAt != nil {
		article.PublishAt = *input.PublishAt
	}
	article.UpdatedAt = service.now().UTC()

	err = service.db.InTx(ctx, func(q postgres.Querier) error {
		if image != nil {
			cover, err := service.covers.Create(ctx, q, attachment.Upload{
				UserID: caller.UserID, Name: article.Name, Description: article.Description, Data: image,
			})
			if err != nil {
				return err
			}
			article.CoverID = cover.ID
		}

		if input.Content != nil {
			content, err := service.texts.Create(ctx, q, article.ID, *input.Content)
			if err != nil {
				return err
			}
			article.ContentID = content.ID
		}

		return service.repo.Update(ctx, q, article)
	})
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		article.Content = *input.Content
	} else if err := service.attachContent(ctx, article); err != nil {
		return nil, err
	}

	service.index(ctx, article)

	ctxutil.GetLogger(ctx).InfoContext(ctx, "article_updated", slog.String("article_id", article.ID))
	return article, nil
}

// Delete removes an article and every text revision it owns in one
// transaction. Only the author or an administrator may delete.
func (service *Service) Delete(ctx context.Context, caller *sec.AuthClaims, id string) error {
	if !caller.Can(sec.RoleEditor) {
		return apperr.Forbidden("Permission denied.")
	}

	article, err := service.repo.FindByID(ctx, service.db, id)
	if err != nil {
		return err
	}

	if !canModify(caller, article) {
		return apperr.Forbidden("Permission denied.")
	}

	err = service.db.InTx(ctx, func(q postgres.Querier) error {
		if err := service.texts.DeleteByRef(ctx, q, article.ID); err != nil {
			return err
		}
		return service.repo.Delete(ctx, q, article.ID)
	})
	if err != nil {
		return err
	}

	if err := service.indexer.Unindex(ctx, article.ID); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "article_unindex_failed",
			slog.String("article_id", article.ID), slog.Any("error", err))
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "article_deleted", slog.String("article_id", article.ID))
	return nil
}

// # Helpers

func canModify(caller *sec.AuthClaims, article *Article) bool {
	return caller.IsAdmin() || (caller != nil && caller.UserID == article.UserID)
}

func (service *Service) nowMillis() *int64 {
	now := service.now().UnixMilli()
	return &now
}

// attachContent loads the current text revision. A missing revision is a
// data fault reported as NOT_FOUND.
func (service *Service) attachContent(ctx context.Context, article *Article) error {
	content, err := service.texts.Get(ctx, article.ContentID)
	if err != nil {
		return err
	}
	article.Content = content.Value
	return nil
}

// index pushes the article to the search indexer. Failures are logged only.
func (service *Service) index(ctx context.Context, article *Article) {
	plain, err := service.renderer.ToText(article.Content)
	if err != nil {
		plain = article.Content
	}

	err = service.indexer.Index(ctx, search.Document{
		ID:          article.ID,
		Type:        "article",
		Name:        article.Name,
		Description: article.Description,
		Tags:        article.Tags,
		Content:     plain,
		URL:         "/article/" + article.ID,
		CreatedAt:   article.PublishAt,
		UpdatedAt:   article.UpdatedAt.UnixMilli(),
	})
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "article_index_failed",
			slog.String("article_id", article.ID), slog.Any("error", err))
	}
}

// decodeImage decodes an optional base64 cover; "" means no image.
func decodeImage(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperr.InvalidParam(FieldImage, "Image must be base64 encoded")
	}
	return data, nil
}
