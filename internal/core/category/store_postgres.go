// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

const resourceName = "Category"

// PostgresRepository implements [Repository] on blog.category.
type PostgresRepository struct{}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

var selectColumns = strings.Join(schema.Category.Columns(), ", ")

func scanCategory(row interface{ Scan(...any) error }) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID, &category.Name, &category.Description,
		&category.DisplayOrder, &category.CreatedAt, &category.UpdatedAt,
	)
	return category, err
}

func (repository *PostgresRepository) List(context context.Context, db postgres.Querier) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.Category.Table, schema.Category.DisplayOrder, schema.Category.CreatedAt)

	rows, err := db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName, "scan_category")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "iterate_categories")
	}

	return categories, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, db postgres.Querier, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.Category.Table, schema.Category.ID)

	category, err := scanCategory(db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "find_category")
	}

	return category, nil
}

func (repository *PostgresRepository) MaxDisplayOrder(context context.Context, db postgres.Querier) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX(%s), -1) FROM %s`,
		schema.Category.DisplayOrder, schema.Category.Table)

	var maxOrder int
	if err := db.QueryRow(context, query).Scan(&maxOrder); err != nil {
		return 0, dberr.Wrap(err, resourceName, "max_display_order")
	}

	return maxOrder, nil
}

func (repository *PostgresRepository) Create(context context.Context, db postgres.Querier, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.Category.Table, selectColumns)

	_, err := db.Exec(context, query,
		category.ID, category.Name, category.Description,
		category.DisplayOrder, category.CreatedAt, category.UpdatedAt,
	)
	return dberr.Wrap(err, resourceName, "create_category")
}

func (repository *PostgresRepository) Update(context context.Context, db postgres.Querier, category *Category) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		schema.Category.Table, schema.Category.Name, schema.Category.Description,
		schema.Category.UpdatedAt, schema.Category.ID)

	tag, err := db.Exec(context, query, category.ID, category.Name, category.Description, category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_category")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}

	return nil
}

func (repository *PostgresRepository) UpdateDisplayOrders(context context.Context, db postgres.Querier, changes []OrderChange) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Category.Table, schema.Category.DisplayOrder, schema.Category.ID)

	for _, change := range changes {
		tag, err := db.Exec(context, query, change.ID, change.DisplayOrder)
		if err != nil {
			return dberr.Wrap(err, resourceName, "update_display_order")
		}
		// Deleted since the list was read.
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resourceName)
		}
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, db postgres.Querier, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Category.Table, schema.Category.ID)

	tag, err := db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_category")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}

	return nil
}
