package repositories

import (
	"context"
	"errors"
	"fmt"

	"dinepos/internal/common"
	"dinepos/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type TableRepository interface {
	Create(ctx context.Context, table *models.Table) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Table, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]*models.Table, error)
	Occupy(ctx context.Context, tenantID, id, orderID uuid.UUID) error
	Release(ctx context.Context, tenantID, id uuid.UUID) error
}

type tableRepo struct {
	db DBTX
}

func NewTableRepo(db DBTX) TableRepository {
	return &tableRepo{db: db}
}

const tableColumns = `id, tenant_id, name, capacity, status, current_order_id, created_at, updated_at`

func (r *tableRepo) Create(ctx context.Context, table *models.Table) error {
	query := `
		INSERT INTO restaurant_tables (id, tenant_id, name, capacity, status, current_order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULL, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := conn(ctx, r.db).QueryRow(ctx, query, table.ID, table.TenantID, table.Name, table.Capacity, string(table.Status)).
		Scan(&table.CreatedAt, &table.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.NewValidationError("name", "a table with this name already exists")
		}
		return fmt.Errorf("failed to insert table: %w", err)
	}
	return nil
}

func (r *tableRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM restaurant_tables WHERE tenant_id = $1 AND id = $2`
	table, err := scanTable(conn(ctx, r.db).QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("table", id)
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return table, nil
}

func (r *tableRepo) List(ctx context.Context, tenantID uuid.UUID) ([]*models.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM restaurant_tables WHERE tenant_id = $1 ORDER BY name`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := []*models.Table{}
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

// Occupy marks the table occupied and binds it to orderID. It does not check
// the current status; callers that care must read it first.
func (r *tableRepo) Occupy(ctx context.Context, tenantID, id, orderID uuid.UUID) error {
	query := `UPDATE restaurant_tables SET status = $1, current_order_id = $2, updated_at = NOW() WHERE tenant_id = $3 AND id = $4`
	tag, err := conn(ctx, r.db).Exec(ctx, query, string(models.TableStatusOccupied), orderID, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to occupy table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.NewNotFoundError("table", id)
	}
	return nil
}

func (r *tableRepo) Release(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `UPDATE restaurant_tables SET status = $1, current_order_id = NULL, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`
	tag, err := conn(ctx, r.db).Exec(ctx, query, string(models.TableStatusAvailable), tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to release table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.NewNotFoundError("table", id)
	}
	return nil
}

func scanTable(row pgx.Row) (*models.Table, error) {
	table := &models.Table{}
	var status string
	err := row.Scan(&table.ID, &table.TenantID, &table.Name, &table.Capacity, &status,
		&table.CurrentOrderID, &table.CreatedAt, &table.UpdatedAt)
	if err != nil {
		return nil, err
	}
	table.Status = models.TableStatus(status)
	return table, nil
}
