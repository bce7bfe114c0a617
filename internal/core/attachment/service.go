// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attachment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// Service validates, stores and looks up attachments.
type Service struct {
	repo    Repository
	objects ObjectStore
	db      postgres.DB
	now     func() time.Time
}

// NewService constructs a new attachment [Service]. A nil objects store
// disables uploads.
func NewService(repo Repository, objects ObjectStore, db postgres.DB) *Service {
	return &Service{repo: repo, objects: objects, db: db, now: time.Now}
}

// Get returns attachment metadata by id.
func (service *Service) Get(ctx context.Context, id string) (*Attachment, error) {
	return service.repo.FindByID(ctx, service.db, id)
}

/*
Create probes the upload, stores the bytes and records the metadata on q.

The object is written before the row; when recording fails the object is
removed again so no unreferenced bytes remain.
*/
func (service *Service) Create(ctx context.Context, q postgres.Querier, upload Upload) (*Attachment, error) {
	if service.objects == nil {
		return nil, apperr.ServiceUnavailable("Image uploads are not configured")
	}

	info, err := probeImage(upload.Data)
	if err != nil {
		return nil, err
	}

	now := service.now().UTC()
	id := uuid.New()
	key := fmt.Sprintf("covers/%s/%s.%s", now.Format("2006/01"), id, info.format)

	url, err := service.objects.Put(ctx, key, info.mime, upload.Data)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	attachment := &Attachment{
		ID:          id,
		UserID:      upload.UserID,
		Name:        upload.Name,
		Description: upload.Description,
		Mime:        info.mime,
		Width:       info.width,
		Height:      info.height,
		Size:        int64(len(upload.Data)),
		ObjectKey:   key,
		URL:         url,
		CreatedAt:   now,
	}

	if err := service.repo.Create(ctx, q, attachment); err != nil {
		if deleteErr := service.objects.Delete(ctx, key); deleteErr != nil {
			ctxutil.GetLogger(ctx).WarnContext(ctx, "attachment_object_orphaned",
				slog.String("object_key", key), slog.Any("error", deleteErr))
		}
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "attachment_created",
		slog.String("attachment_id", id),
		slog.String("mime", info.mime),
		slog.Int64("size", attachment.Size),
	)

	return attachment, nil
}
