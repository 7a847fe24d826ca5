// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session_kv"

	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

// sqlite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return sqlite.
		Select(columnValue).
		From(sessionTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}

func buildSetValueQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert(sessionTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(" + columnKey + ") DO UPDATE SET " +
			columnValue + " = excluded." + columnValue + ", " +
			columnUpdatedAt + " = excluded." + columnUpdatedAt).
		ToSql()
}

func buildRemoveValueQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(sessionTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}
