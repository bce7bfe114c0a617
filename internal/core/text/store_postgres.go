// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package text

import (
	"context"
	"fmt"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

const resourceName = "Text"

// PostgresRepository implements [Repository] on blog.text.
type PostgresRepository struct{}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

func (repository *PostgresRepository) FindByID(context context.Context, db postgres.Querier, id string) (*Text, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Text.ID, schema.Text.RefID, schema.Text.Value, schema.Text.CreatedAt,
		schema.Text.Table, schema.Text.ID)

	text := &Text{}
	err := db.QueryRow(context, query, id).Scan(&text.ID, &text.RefID, &text.Value, &text.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "find_text")
	}

	return text, nil
}

func (repository *PostgresRepository) Create(context context.Context, db postgres.Querier, text *Text) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		schema.Text.Table, schema.Text.ID, schema.Text.RefID, schema.Text.Value, schema.Text.CreatedAt)

	_, err := db.Exec(context, query, text.ID, text.RefID, text.Value, text.CreatedAt)
	return dberr.Wrap(err, resourceName, "create_text")
}

func (repository *PostgresRepository) DeleteByRef(context context.Context, db postgres.Querier, refID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Text.Table, schema.Text.RefID)

	_, err := db.Exec(context, query, refID)
	return dberr.Wrap(err, resourceName, "delete_texts_by_ref")
}
