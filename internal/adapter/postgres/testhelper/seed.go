package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

// NewUserID returns a fresh user id. Users live in the identity provider, so
// no row is needed; a unique id isolates each test's records.
func NewUserID() uuid.UUID {
	return uuid.New()
}

// SeedRepair inserts a repair log for userID with the given name, date and cost.
func SeedRepair(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name, day, cost string, status domain.RepairStatus) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO repair_logs (id, user_id, item_name, repair_date, location, cost, status)
		 VALUES ($1, $2, $3, $4, 'HQ', $5, $6)`,
		id, userID, name, mustDate(t, day), decimal.RequireFromString(cost).String(), string(status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRepair: %v", err)
	}
	return id
}

// SeedPurchase inserts a purchase log for userID with the given name, date and cost.
func SeedPurchase(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name, day, cost string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO purchase_logs (id, user_id, item_name, purchase_date, location, cost)
		 VALUES ($1, $2, $3, $4, 'Store', $5)`,
		id, userID, name, mustDate(t, day), decimal.RequireFromString(cost).String(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPurchase: %v", err)
	}
	return id
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("testhelper: parse date %q: %v", s, err)
	}
	return d
}
