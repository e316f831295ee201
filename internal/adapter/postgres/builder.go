package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Select runs a built query and scans every row into T by `db` tags.
func Select[T any](ctx context.Context, q Querier, b squirrel.Sqlizer) ([]T, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var out []T
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Get runs a built query expected to return exactly one row.
func Get[T any](ctx context.Context, q Querier, b squirrel.Sqlizer) (T, error) {
	var out T
	sql, args, err := b.ToSql()
	if err != nil {
		return out, fmt.Errorf("build query: %w", err)
	}
	err = pgxscan.Get(ctx, q, &out, sql, args...)
	return out, err
}

// Exec runs a built statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
