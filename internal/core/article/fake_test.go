// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/taibuivan/inkwell/internal/core/article"
	"github.com/taibuivan/inkwell/internal/core/attachment"
	"github.com/taibuivan/inkwell/internal/core/category"
	"github.com/taibuivan/inkwell/internal/core/setting"
	"github.com/taibuivan/inkwell/internal/core/text"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/markdown"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/platform/postgres/postgrestest"
	"github.com/taibuivan/inkwell/internal/search"
)

// now is the fixed clock of every article test (epoch ms 1_700_000_000_000).
var now = time.UnixMilli(1_700_000_000_000).UTC()

// # Articles

type memoryRepo struct {
	rows map[string]*article.Article
}

func newMemoryRepo(articles ...*article.Article) *memoryRepo {
	repo := &memoryRepo{rows: map[string]*article.Article{}}
	for _, a := range articles {
		repo.rows[a.ID] = a
	}
	return repo
}

func (r *memoryRepo) matching(filter article.Filter) []*article.Article {
	list := make([]*article.Article, 0, len(r.rows))
	for _, a := range r.rows {
		if filter.PublishedBefore != nil && a.PublishAt >= *filter.PublishedBefore {
			continue
		}
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		copied := *a
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].PublishAt != list[j].PublishAt {
			return list[i].PublishAt > list[j].PublishAt
		}
		return list[i].ID > list[j].ID
	})
	return list
}

func (r *memoryRepo) List(_ context.Context, _ postgres.Querier, filter article.Filter, limit, offset int) ([]*article.Article, error) {
	list := r.matching(filter)
	if offset >= len(list) {
		return []*article.Article{}, nil
	}
	list = list[offset:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *memoryRepo) Count(_ context.Context, _ postgres.Querier, filter article.Filter) (int, error) {
	return len(r.matching(filter)), nil
}

func (r *memoryRepo) FindByID(_ context.Context, _ postgres.Querier, id string) (*article.Article, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	copied := *a
	return &copied, nil
}

func (r *memoryRepo) Create(_ context.Context, _ postgres.Querier, a *article.Article) error {
	copied := *a
	copied.Content = ""
	r.rows[a.ID] = &copied
	return nil
}

func (r *memoryRepo) Update(_ context.Context, _ postgres.Querier, a *article.Article) error {
	if _, ok := r.rows[a.ID]; !ok {
		return apperr.NotFound("Article")
	}
	copied := *a
	copied.Content = ""
	r.rows[a.ID] = &copied
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, _ postgres.Querier, id string) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Article")
	}
	delete(r.rows, id)
	return nil
}

// # Collaborators

type categorySet map[string]bool

func (s categorySet) Get(_ context.Context, id string) (*category.Category, error) {
	if !s[id] {
		return nil, apperr.NotFound("Category")
	}
	return &category.Category{ID: id, Name: id}, nil
}

type memoryTexts struct {
	rows       map[string]*text.Text
	seq        int
	failCreate bool
}

func newMemoryTexts() *memoryTexts {
	return &memoryTexts{rows: map[string]*text.Text{}}
}

func (m *memoryTexts) put(id, refID, value string) {
	m.rows[id] = &text.Text{ID: id, RefID: refID, Value: value}
}

func (m *memoryTexts) Get(_ context.Context, id string) (*text.Text, error) {
	t, ok := m.rows[id]
	if !ok {
		return nil, apperr.NotFound("Text")
	}
	return t, nil
}

func (m *memoryTexts) Create(_ context.Context, _ postgres.Querier, refID, value string) (*text.Text, error) {
	if m.failCreate {
		return nil, apperr.Internal(errors.New("insert failed"))
	}
	m.seq++
	id := fmt.Sprintf("text-%d", m.seq)
	m.put(id, refID, value)
	return m.rows[id], nil
}

func (m *memoryTexts) DeleteByRef(_ context.Context, _ postgres.Querier, refID string) error {
	for id, t := range m.rows {
		if t.RefID == refID {
			delete(m.rows, id)
		}
	}
	return nil
}

func (m *memoryTexts) countRef(refID string) int {
	n := 0
	for _, t := range m.rows {
		if t.RefID == refID {
			n++
		}
	}
	return n
}

type recordingCovers struct {
	uploads []attachment.Upload
}

func (c *recordingCovers) Create(_ context.Context, _ postgres.Querier, upload attachment.Upload) (*attachment.Attachment, error) {
	c.uploads = append(c.uploads, upload)
	return &attachment.Attachment{ID: fmt.Sprintf("cover-%d", len(c.uploads))}, nil
}

type recordingIndexer struct {
	indexed   []search.Document
	unindexed []string
	err       error
}

func (i *recordingIndexer) Index(_ context.Context, doc search.Document) error {
	i.indexed = append(i.indexed, doc)
	return i.err
}

func (i *recordingIndexer) Unindex(_ context.Context, id string) error {
	i.unindexed = append(i.unindexed, id)
	return i.err
}

type staticWebsite setting.Website

func (w staticWebsite) Website(context.Context) (*setting.Website, error) {
	website := setting.Website(w)
	return &website, nil
}

// # Fixture

type fixture struct {
	repo    *memoryRepo
	texts   *memoryTexts
	covers  *recordingCovers
	indexer *recordingIndexer
	db      *postgrestest.DB
	service *article.Service
}

func newFixture(articles ...*article.Article) *fixture {
	f := &fixture{
		repo:    newMemoryRepo(articles...),
		texts:   newMemoryTexts(),
		covers:  &recordingCovers{},
		indexer: &recordingIndexer{},
		db:      postgrestest.New(),
	}
	for _, a := range articles {
		f.texts.put(a.ContentID, a.ID, "Body of **"+a.Name+"**")
	}

	f.service = article.NewService(article.Deps{
		Repo:       f.repo,
		DB:         f.db,
		Categories: categorySet{"news": true, "notes": true},
		Texts:      f.texts,
		Covers:     f.covers,
		Indexer:    f.indexer,
		Renderer:   markdown.NewRenderer(),
	})
	f.service.SetClock(func() time.Time { return now })
	return f
}

// stored builds a persisted article offset from the test clock.
func stored(id, owner string, offset time.Duration) *article.Article {
	return &article.Article{
		ID:          id,
		UserID:      owner,
		UserName:    "Author " + owner,
		CategoryID:  "news",
		ContentID:   "content-" + id,
		Name:        "Article " + id,
		Description: "About " + id,
		PublishAt:   now.Add(offset).UnixMilli(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
