package postgres

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() squirrel.StatementBuilderType {
	return psql
}

// Scanner is implemented by both pgx.Row and pgx.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ListByDate selects the user's rows from table constrained by f and ordered
// by dateColumn (newest first unless f.Ascending), ties broken by created_at.
func ListByDate(table, dateColumn string, columns []string, userID any, f domain.RecordListFilter) squirrel.SelectBuilder {
	q := psql.Select(columns...).From(table).Where(squirrel.Eq{"user_id": userID})
	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{dateColumn: domain.DateOf(*f.DateFrom)})
	}
	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{dateColumn: domain.DateOf(*f.DateTo)})
	}

	dir := "DESC"
	if f.Ascending {
		dir = "ASC"
	}
	return q.OrderBy(dateColumn+" "+dir, "created_at "+dir)
}

// CostParam converts a cost to the text form bound to NUMERIC columns.
func CostParam(d decimal.Decimal) string {
	return d.StringFixed(domain.CostDecimals)
}

// ParseCost decodes a NUMERIC column selected as text.
func ParseCost(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse cost %q: %w", s, err)
	}
	return d, nil
}

// TextArray returns urls as a non-nil slice so it binds to TEXT[] NOT NULL.
func TextArray(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
