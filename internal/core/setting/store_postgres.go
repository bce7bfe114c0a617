// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting

import (
	"context"
	"fmt"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on system.setting.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindGroup(context context.Context, group string) (map[string]string, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.SystemSetting.Key, schema.SystemSetting.Value,
		schema.SystemSetting.Table, schema.SystemSetting.Group)

	rows, err := repository.db.Query(context, query, group)
	if err != nil {
		return nil, dberr.Wrap(err, "Setting", "find_setting_group")
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, dberr.Wrap(err, "Setting", "scan_setting")
		}
		values[key] = value
	}

	return values, dberr.Wrap(rows.Err(), "Setting", "iterate_settings")
}
