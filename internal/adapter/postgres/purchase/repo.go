// Package purchase implements the purchase log repository using PostgreSQL.
package purchase

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
	table      = "purchase_logs"
	entity     = "purchase_log"
	dateColumn = "purchase_date"
)

var columns = []string{
	"id", "user_id", "item_name", "purchase_date", "location",
	"cost::text", "warranty_info", "notes", "file_urls", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides purchase log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new purchase log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns the user's purchase logs ordered by purchase date, newest first
// unless f.Ascending is set. Ties are broken by creation time.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.RecordListFilter) ([]domain.PurchaseRecord, error) {
	q := postgres.ListByDate(table, dateColumn, columns, userID, f)
	out, err := postgres.QueryAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), q, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return out, nil
}

// GetByID returns a single purchase log owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	return r.queryOne(ctx, id, q)
}

// Create inserts a purchase log and returns the stored record.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, f domain.PurchaseFields) (*domain.PurchaseRecord, error) {
	id := uuid.New()
	q := postgres.Builder().Insert(table).
		Columns("id", "user_id", "item_name", "purchase_date", "location", "cost", "warranty_info", "notes", "file_urls").
		Values(id, userID, f.ItemName, domain.DateOf(f.PurchaseDate), f.Location,
			postgres.CostParam(f.Cost), f.WarrantyInfo, f.Notes, postgres.TextArray(f.Attachments)).
		Suffix(returning)
	return r.queryOne(ctx, id, q)
}

// Update replaces the mutable fields of a purchase log owned by the user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, f domain.PurchaseFields) (*domain.PurchaseRecord, error) {
	q := postgres.Builder().Update(table).
		Set("item_name", f.ItemName).
		Set("purchase_date", domain.DateOf(f.PurchaseDate)).
		Set("location", f.Location).
		Set("cost", postgres.CostParam(f.Cost)).
		Set("warranty_info", f.WarrantyInfo).
		Set("notes", f.Notes).
		Set("file_urls", postgres.TextArray(f.Attachments)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)
	return r.queryOne(ctx, id, q)
}

// Delete removes a purchase log owned by the user and returns what was removed.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error) {
	q := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)
	return r.queryOne(ctx, id, q)
}

func (r *Repo) queryOne(ctx context.Context, id uuid.UUID, q squirrel.Sqlizer) (*domain.PurchaseRecord, error) {
	rec, err := postgres.QueryOne(ctx, postgres.QuerierFromCtx(ctx, r.pool), q, scanRecord)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &rec, nil
}

func scanRecord(s postgres.Scanner) (domain.PurchaseRecord, error) {
	var (
		rec  domain.PurchaseRecord
		cost string
	)
	err := s.Scan(
		&rec.ID, &rec.UserID, &rec.ItemName, &rec.PurchaseDate, &rec.Location,
		&cost, &rec.WarrantyInfo, &rec.Notes, &rec.Attachments, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.PurchaseRecord{}, err
	}

	if rec.Cost, err = postgres.ParseCost(cost); err != nil {
		return domain.PurchaseRecord{}, err
	}
	rec.PurchaseDate = domain.DateOf(rec.PurchaseDate)
	rec.Attachments = postgres.TextArray(rec.Attachments)
	return rec, nil
}
