// Package repair implements the repair log repository using PostgreSQL.
// Queries are built with squirrel; cost travels as text so NUMERIC values
// round-trip through decimal.Decimal without float conversion.
package repair

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/itemlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

const (
	table      = "repair_logs"
	entity     = "repair_log"
	dateColumn = "repair_date"
)

var columns = []string{
	"id", "user_id", "item_name", "device_type", "repair_date", "location",
	"cost::text", "status", "notes", "file_urls", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides repair log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new repair log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns the user's repair logs ordered by repair date, newest first
// unless f.Ascending is set. Ties are broken by creation time.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.RecordListFilter) ([]domain.RepairRecord, error) {
	q := postgres.ListByDate(table, dateColumn, columns, userID, f)
	out, err := postgres.QueryAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), q, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	return out, nil
}

// GetByID returns a single repair log owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.RepairRecord, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	return r.queryOne(ctx, id, q)
}

// Create inserts a repair log and returns the stored record.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, f domain.RepairFields) (*domain.RepairRecord, error) {
	id := uuid.New()
	q := postgres.Builder().Insert(table).
		Columns("id", "user_id", "item_name", "device_type", "repair_date", "location", "cost", "status", "notes", "file_urls").
		Values(id, userID, f.ItemName, f.DeviceType, domain.DateOf(f.RepairDate), f.Location,
			postgres.CostParam(f.Cost), string(f.Status), f.Notes, postgres.TextArray(f.Attachments)).
		Suffix(returning)
	return r.queryOne(ctx, id, q)
}

// Update replaces the mutable fields of a repair log owned by the user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, f domain.RepairFields) (*domain.RepairRecord, error) {
	q := postgres.Builder().Update(table).
		Set("item_name", f.ItemName).
		Set("device_type", f.DeviceType).
		Set("repair_date", domain.DateOf(f.RepairDate)).
		Set("location", f.Location).
		Set("cost", postgres.CostParam(f.Cost)).
		Set("status", string(f.Status)).
		Set("notes", f.Notes).
		Set("file_urls", postgres.TextArray(f.Attachments)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)
	return r.queryOne(ctx, id, q)
}

// Delete removes a repair log owned by the user and returns what was removed.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.RepairRecord, error) {
	q := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)
	return r.queryOne(ctx, id, q)
}

func (r *Repo) queryOne(ctx context.Context, id uuid.UUID, q squirrel.Sqlizer) (*domain.RepairRecord, error) {
	rec, err := postgres.QueryOne(ctx, postgres.QuerierFromCtx(ctx, r.pool), q, scanRecord)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &rec, nil
}

func scanRecord(s postgres.Scanner) (domain.RepairRecord, error) {
	var (
		rec    domain.RepairRecord
		cost   string
		status string
	)
	err := s.Scan(
		&rec.ID, &rec.UserID, &rec.ItemName, &rec.DeviceType, &rec.RepairDate, &rec.Location,
		&cost, &status, &rec.Notes, &rec.Attachments, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.RepairRecord{}, err
	}

	if rec.Cost, err = postgres.ParseCost(cost); err != nil {
		return domain.RepairRecord{}, err
	}
	rec.Status = domain.RepairStatus(status)
	rec.RepairDate = domain.DateOf(rec.RepairDate)
	rec.Attachments = postgres.TextArray(rec.Attachments)
	return rec, nil
}
