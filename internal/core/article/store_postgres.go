// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

const resourceName = "Article"

// PostgresRepository implements [Repository] on blog.article.
type PostgresRepository struct{}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

var selectColumns = strings.Join(schema.Article.Columns(), ", ")

func scanArticle(row interface{ Scan(...any) error }) (*Article, error) {
	article := &Article{}
	err := row.Scan(
		&article.ID, &article.UserID, &article.UserName, &article.CategoryID,
		&article.CoverID, &article.ContentID, &article.Name, &article.Description,
		&article.Tags, &article.PublishAt, &article.CreatedAt, &article.UpdatedAt,
	)
	return article, err
}

// whereClause renders filter as a WHERE clause and its arguments.
func whereClause(filter Filter) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.PublishedBefore != nil {
		args = append(args, *filter.PublishedBefore)
		conditions = append(conditions, fmt.Sprintf("%s < $%d", schema.Article.PublishAt, len(args)))
	}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.Article.CategoryID, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (repository *PostgresRepository) List(context context.Context, db postgres.Querier, filter Filter, limit, offset int) ([]*Article, error) {
	where, args := whereClause(filter)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s DESC LIMIT $%d OFFSET $%d`,
		selectColumns, schema.Article.Table, where,
		schema.Article.PublishAt, schema.Article.ID, len(args)-1, len(args))

	rows, err := db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName, "scan_article")
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "iterate_articles")
	}

	return articles, nil
}

func (repository *PostgresRepository) Count(context context.Context, db postgres.Querier, filter Filter) (int, error) {
	where, args := whereClause(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, schema.Article.Table, where)

	var total int
	if err := db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_articles")
	}

	return total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, db postgres.Querier, id string) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.Article.Table, schema.Article.ID)

	article, err := scanArticle(db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "find_article")
	}

	return article, nil
}

func (repository *PostgresRepository) Create(context context.Context, db postgres.Querier, article *Article) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		schema.Article.Table, selectColumns)

	_, err := db.Exec(context, query,
		article.ID, article.UserID, article.UserName, article.CategoryID,
		article.CoverID, article.ContentID, article.Name, article.Description,
		article.Tags, article.PublishAt, article.CreatedAt, article.UpdatedAt,
	)
	return dberr.Wrap(err, resourceName, "create_article")
}

func (repository *PostgresRepository) Update(context context.Context, db postgres.Querier, article *Article) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9 WHERE %s = $1`,
		schema.Article.Table,
		schema.Article.CategoryID, schema.Article.CoverID, schema.Article.ContentID,
		schema.Article.Name, schema.Article.Description, schema.Article.Tags,
		schema.Article.PublishAt, schema.Article.UpdatedAt,
		schema.Article.ID)

	tag, err := db.Exec(context, query,
		article.ID, article.CategoryID, article.CoverID, article.ContentID,
		article.Name, article.Description, article.Tags, article.PublishAt, article.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_article")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, db postgres.Querier, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Article.Table, schema.Article.ID)

	tag, err := db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_article")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}

	return nil
}
