package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinepos/internal/common"
	"dinepos/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StockDelta is a signed change to one inventory item. CostPerUnit, when set,
// overwrites the stored cost in the same statement.
type StockDelta struct {
	TenantID    uuid.UUID
	ItemID      uuid.UUID
	Change      float64
	Reason      models.MovementReason
	ReferenceID *uuid.UUID
	CostPerUnit *float64
}

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.InventoryItem, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error)
	ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]*models.InventoryItem, error)
	ApplyDelta(ctx context.Context, delta StockDelta) (*models.StockMovement, error)
	ListMovements(ctx context.Context, tenantID, itemID uuid.UUID, limit int) ([]*models.StockMovement, error)
	ListMovementsSince(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]*models.StockMovement, error)
	ListTenantIDs(ctx context.Context) ([]uuid.UUID, error)
}

type inventoryRepo struct {
	db DBTX
}

func NewInventoryRepo(db DBTX) InventoryRepository {
	return &inventoryRepo{db: db}
}

const inventoryColumns = `id, tenant_id, name, unit, quantity, cost_per_unit, low_stock_threshold, category, created_at, updated_at`

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, tenant_id, name, unit, quantity, cost_per_unit, low_stock_threshold, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		item.ID, item.TenantID, item.Name, item.Unit, item.Quantity,
		item.CostPerUnit, item.LowStockThreshold, item.Category,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.NewValidationError("name", "an inventory item with this name already exists")
		}
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE tenant_id = $1 AND id = $2`
	item, err := scanInventoryItem(conn(ctx, r.db).QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("inventory item", id)
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

func (r *inventoryRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return collectInventoryItems(rows)
}

// ListLowStock returns items at or below their low-stock threshold, lowest first.
func (r *inventoryRepo) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE tenant_id = $1 AND quantity <= low_stock_threshold ORDER BY quantity - low_stock_threshold`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return collectInventoryItems(rows)
}

// ApplyDelta adds delta.Change to the stored quantity and journals the
// movement in one statement. The increment is evaluated by the database, so
// concurrent deltas on the same row never overwrite each other.
func (r *inventoryRepo) ApplyDelta(ctx context.Context, delta StockDelta) (*models.StockMovement, error) {
	query := `
		WITH updated AS (
			UPDATE inventory_items
			SET quantity = quantity + $3::numeric, cost_per_unit = COALESCE($4::numeric, cost_per_unit), updated_at = NOW()
			WHERE tenant_id = $1 AND id = $2
			RETURNING id, tenant_id, quantity
		)
		INSERT INTO stock_movements (id, tenant_id, item_id, change, quantity_after, reason, reference_id, created_at)
		SELECT $5, tenant_id, id, $3::numeric, quantity, $6, $7, NOW() FROM updated
		RETURNING quantity_after, created_at
	`
	movement := &models.StockMovement{
		ID:          uuid.New(),
		TenantID:    delta.TenantID,
		ItemID:      delta.ItemID,
		Change:      delta.Change,
		Reason:      delta.Reason,
		ReferenceID: delta.ReferenceID,
	}

	err := conn(ctx, r.db).QueryRow(ctx, query,
		delta.TenantID, delta.ItemID, delta.Change, delta.CostPerUnit,
		movement.ID, string(delta.Reason), delta.ReferenceID,
	).Scan(&movement.QuantityAfter, &movement.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("inventory item", delta.ItemID)
		}
		return nil, fmt.Errorf("failed to apply stock delta: %w", err)
	}
	return movement, nil
}

func (r *inventoryRepo) ListMovements(ctx context.Context, tenantID, itemID uuid.UUID, limit int) ([]*models.StockMovement, error) {
	query := `
		SELECT id, tenant_id, item_id, change, quantity_after, reason, reference_id, created_at
		FROM stock_movements
		WHERE tenant_id = $1 AND item_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return collectMovements(rows)
}

func (r *inventoryRepo) ListMovementsSince(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]*models.StockMovement, error) {
	query := `
		SELECT id, tenant_id, item_id, change, quantity_after, reason, reference_id, created_at
		FROM stock_movements
		WHERE tenant_id = $1 AND created_at >= $2
		ORDER BY created_at
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return collectMovements(rows)
}

// ListTenantIDs returns every tenant that owns at least one inventory item.
func (r *inventoryRepo) ListTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT DISTINCT tenant_id FROM inventory_items`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := row.Scan(&item.ID, &item.TenantID, &item.Name, &item.Unit, &item.Quantity,
		&item.CostPerUnit, &item.LowStockThreshold, &item.Category, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func collectInventoryItems(rows pgx.Rows) ([]*models.InventoryItem, error) {
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func collectMovements(rows pgx.Rows) ([]*models.StockMovement, error) {
	defer rows.Close()

	movements := []*models.StockMovement{}
	for rows.Next() {
		m := &models.StockMovement{}
		var reason string
		if err := rows.Scan(&m.ID, &m.TenantID, &m.ItemID, &m.Change, &m.QuantityAfter, &reason, &m.ReferenceID, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Reason = models.MovementReason(reason)
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
