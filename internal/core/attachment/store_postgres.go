// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attachment

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

const resourceName = "Attachment"

// PostgresRepository implements [Repository] on media.attachment.
type PostgresRepository struct{}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

func (repository *PostgresRepository) FindByID(context context.Context, db postgres.Querier, id string) (*Attachment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.Attachment.Columns(), ", "), schema.Attachment.Table, schema.Attachment.ID)

	attachment := &Attachment{}
	err := db.QueryRow(context, query, id).Scan(
		&attachment.ID, &attachment.UserID, &attachment.Name, &attachment.Description,
		&attachment.Mime, &attachment.Width, &attachment.Height, &attachment.Size,
		&attachment.ObjectKey, &attachment.URL, &attachment.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "find_attachment")
	}

	return attachment, nil
}

func (repository *PostgresRepository) Create(context context.Context, db postgres.Querier, attachment *Attachment) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		schema.Attachment.Table, strings.Join(schema.Attachment.Columns(), ", "))

	_, err := db.Exec(context, query,
		attachment.ID, attachment.UserID, attachment.Name, attachment.Description,
		attachment.Mime, attachment.Width, attachment.Height, attachment.Size,
		attachment.ObjectKey, attachment.URL, attachment.CreatedAt,
	)
	return dberr.Wrap(err, resourceName, "create_attachment")
}
