// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_items"

// sqlite uses ? placeholders
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(key string) (string, []any, error) {
	return builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetItemQuery(key, value string, now time.Time) (string, []any, error) {
	return builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveItemQuery(key string) (string, []any, error) {
	return builder.
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
