// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search defines the optional full-text indexing collaborator.

Articles are pushed to an [Indexer] after every committed write. No search
engine ships with the server; [Nop] is wired by default and a real engine
can be plugged in behind the same interface.
*/
package search

import (
	"context"
	"log/slog"
)

// Document is the indexed view of an article.
type Document struct {
	ID          string
	Type        string
	Name        string
	Description string
	Tags        string
	// Content is plain text, already stripped of markup.
	Content   string
	URL       string
	CreatedAt int64
	UpdatedAt int64
}

// Indexer receives documents to (un)index.
type Indexer interface {
	Index(ctx context.Context, doc Document) error
	Unindex(ctx context.Context, id string) error
}

// Nop discards every request.
type Nop struct{}

func (Nop) Index(context.Context, Document) error { return nil }
func (Nop) Unindex(context.Context, string) error { return nil }

// Logging records every request at debug level, useful when wiring a new
// engine.
type Logging struct {
	Logger *slog.Logger
}

func (l Logging) Index(ctx context.Context, doc Document) error {
	l.Logger.DebugContext(ctx, "search_index", slog.String("doc_id", doc.ID), slog.String("doc_type", doc.Type))
	return nil
}

func (l Logging) Unindex(ctx context.Context, id string) error {
	l.Logger.DebugContext(ctx, "search_unindex", slog.String("doc_id", id))
	return nil
}
