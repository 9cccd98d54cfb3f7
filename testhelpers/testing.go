package testhelpers

import (
	"context"
	"os"
	"testing"

	"dinepos/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool *pgxpool.Pool
}

// SetupTestDB connects to TEST_DATABASE_URL and applies the migrations. The
// test is skipped when no database is configured.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, connString, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.RunMigrations(ctx, pool, zap.NewNop()); err != nil {
		pool.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(pool.Close)
	return &TestDB{Pool: pool}
}

// NewTenant returns a fresh tenant ID whose rows are removed when the test ends.
func (db *TestDB) NewTenant(t *testing.T) uuid.UUID {
	t.Helper()

	tenantID := uuid.New()
	t.Cleanup(func() {
		ctx := context.Background()
		for _, table := range []string{"stock_movements", "inventory_items", "orders", "products", "restaurant_tables"} {
			if _, err := db.Pool.Exec(ctx, "DELETE FROM "+table+" WHERE tenant_id = $1", tenantID); err != nil {
				t.Logf("cleanup %s: %v", table, err)
			}
		}
	})
	return tenantID
}
