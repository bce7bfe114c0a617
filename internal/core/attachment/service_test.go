// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attachment

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/platform/postgres/postgrestest"
)

type memoryRepo struct {
	rows    map[string]*Attachment
	failing bool
}

func (r *memoryRepo) FindByID(_ context.Context, _ postgres.Querier, id string) (*Attachment, error) {
	if a, ok := r.rows[id]; ok {
		return a, nil
	}
	return nil, apperr.NotFound(resourceName)
}

func (r *memoryRepo) Create(_ context.Context, _ postgres.Querier, a *Attachment) error {
	if r.failing {
		return apperr.Internal(errors.New("insert failed"))
	}
	r.rows[a.ID] = a
	return nil
}

type memoryObjects struct {
	objects map[string][]byte
}

func (o *memoryObjects) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	o.objects[key] = data
	return "https://cdn.test/" + key, nil
}

func (o *memoryObjects) Delete(_ context.Context, key string) error {
	delete(o.objects, key)
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestService(repo *memoryRepo, objects ObjectStore) *Service {
	service := NewService(repo, objects, postgrestest.New())
	service.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return service
}

func TestCreate_StoresProbedImage(t *testing.T) {
	repo := &memoryRepo{rows: map[string]*Attachment{}}
	objects := &memoryObjects{objects: map[string][]byte{}}
	service := newTestService(repo, objects)

	data := pngBytes(t, 4, 3)
	created, err := service.Create(context.Background(), nil, Upload{UserID: "u1", Name: "cover", Data: data})
	require.NoError(t, err)

	assert.Equal(t, "image/png", created.Mime)
	assert.Equal(t, 4, created.Width)
	assert.Equal(t, 3, created.Height)
	assert.Equal(t, int64(len(data)), created.Size)
	assert.Contains(t, created.ObjectKey, "covers/2026/03/")
	assert.Equal(t, "https://cdn.test/"+created.ObjectKey, created.URL)
	assert.Contains(t, objects.objects, created.ObjectKey)

	found, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCreate_RejectsNonImage(t *testing.T) {
	service := newTestService(&memoryRepo{rows: map[string]*Attachment{}}, &memoryObjects{objects: map[string][]byte{}})

	_, err := service.Create(context.Background(), nil, Upload{Data: []byte("plain text")})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.Create(context.Background(), nil, Upload{})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestCreate_WithoutStorage(t *testing.T) {
	service := newTestService(&memoryRepo{rows: map[string]*Attachment{}}, nil)

	_, err := service.Create(context.Background(), nil, Upload{Data: pngBytes(t, 1, 1)})
	assert.True(t, apperr.HasCode(err, apperr.CodeServiceUnavailable))
}

func TestCreate_RemovesObjectWhenRecordFails(t *testing.T) {
	objects := &memoryObjects{objects: map[string][]byte{}}
	service := newTestService(&memoryRepo{rows: map[string]*Attachment{}, failing: true}, objects)

	_, err := service.Create(context.Background(), nil, Upload{Data: pngBytes(t, 2, 2)})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.Empty(t, objects.objects)
}
