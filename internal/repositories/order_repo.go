package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dinepos/internal/common"
	"dinepos/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error)
	GetByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*models.Order, error)
	List(ctx context.Context, tenantID uuid.UUID, status models.OrderStatus, limit, offset int) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderRepo struct {
	db DBTX
}

func NewOrderRepo(db DBTX) OrderRepository {
	return &orderRepo{db: db}
}

const orderColumns = `id, tenant_id, items, total_amount, tax, final_amount, status, type, table_id, payment_method, created_at, updated_at`

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, tenant_id, items, total_amount, tax, final_amount, status, type, table_id, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = conn(ctx, r.db).QueryRow(ctx, query,
		order.ID, order.TenantID, items, order.TotalAmount, order.Tax, order.FinalAmount,
		string(order.Status), string(order.Type), order.TableID, order.PaymentMethod,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1 AND id = $2`
	order, err := scanOrder(conn(ctx, r.db).QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("order", id)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// GetByIDs loads several orders at once. Unknown ids are absent from the result.
func (r *orderRepo) GetByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*models.Order, error) {
	if len(ids) == 0 {
		return []*models.Order{}, nil
	}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1 AND id = ANY($2)`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return collectOrders(rows)
}

// List returns the tenant's orders, newest first. An empty status matches all.
func (r *orderRepo) List(ctx context.Context, tenantID uuid.UUID, status models.OrderStatus, limit, offset int) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1 AND ($2 = '' OR status = $2) ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return collectOrders(rows)
}

func (r *orderRepo) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3 RETURNING ` + orderColumns
	order, err := scanOrder(conn(ctx, r.db).QueryRow(ctx, query, string(status), tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("order", id)
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	order := &models.Order{}
	var items []byte
	var status, orderType string
	err := row.Scan(&order.ID, &order.TenantID, &items, &order.TotalAmount, &order.Tax, &order.FinalAmount,
		&status, &orderType, &order.TableID, &order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	order.Status = models.OrderStatus(status)
	order.Type = models.OrderType(orderType)
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return order, nil
}

func collectOrders(rows pgx.Rows) ([]*models.Order, error) {
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
