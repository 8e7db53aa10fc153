package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the common interface implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return pool
}

// ScanFunc decodes one row into T.
type ScanFunc[T any] func(Scanner) (T, error)

// QueryAll runs stmt and scans every row. The result is never nil.
func QueryAll[T any](ctx context.Context, q Querier, stmt squirrel.Sqlizer, scan ScanFunc[T]) ([]T, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryOne runs stmt and scans exactly one row. pgx.ErrNoRows is returned
// unchanged so callers can map it with MapError.
func QueryOne[T any](ctx context.Context, q Querier, stmt squirrel.Sqlizer, scan ScanFunc[T]) (T, error) {
	var zero T

	sql, args, err := stmt.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build query: %w", err)
	}

	v, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return zero, err
	}
	return v, nil
}
