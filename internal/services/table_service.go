package services

import (
	"context"
	"strings"

	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TableService is the table registry.
type TableService interface {
	Create(ctx context.Context, tenantID uuid.UUID, table *models.Table) error
	Get(ctx context.Context, tenantID, id uuid.UUID) (*models.Table, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]*models.Table, error)
	Occupy(ctx context.Context, tenantID, tableID, orderID uuid.UUID) error
	Release(ctx context.Context, tenantID, tableID uuid.UUID) error
}

type tableService struct {
	tableRepo repositories.TableRepository
	orderRepo repositories.OrderRepository
	logger    *zap.Logger
}

func NewTableService(tableRepo repositories.TableRepository, orderRepo repositories.OrderRepository, logger *zap.Logger) TableService {
	return &tableService{
		tableRepo: tableRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (s *tableService) Create(ctx context.Context, tenantID uuid.UUID, table *models.Table) error {
	table.Name = strings.TrimSpace(table.Name)
	if err := common.ValidateRequiredString(table.Name, "name"); err != nil {
		return common.NewValidationError("name", err.Error())
	}
	if table.Capacity < 0 {
		return common.NewValidationError("capacity", "must not be negative")
	}

	table.ID = uuid.New()
	table.TenantID = tenantID
	table.Status = models.TableStatusAvailable
	table.CurrentOrderID = nil
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return wrapStoreError("create table", err)
	}
	return nil
}

func (s *tableService) Get(ctx context.Context, tenantID, id uuid.UUID) (*models.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, wrapStoreError("get table", err)
	}
	return table, nil
}

// List returns every table with its current order attached. A dangling
// current order reference leaves CurrentOrder nil.
func (s *tableService) List(ctx context.Context, tenantID uuid.UUID) ([]*models.Table, error) {
	tables, err := s.tableRepo.List(ctx, tenantID)
	if err != nil {
		return nil, wrapStoreError("list tables", err)
	}

	var orderIDs []uuid.UUID
	for _, t := range tables {
		if t.CurrentOrderID != nil {
			orderIDs = append(orderIDs, *t.CurrentOrderID)
		}
	}
	if len(orderIDs) == 0 {
		return tables, nil
	}

	orders, err := s.orderRepo.GetByIDs(ctx, tenantID, orderIDs)
	if err != nil {
		return nil, wrapStoreError("resolve table orders", err)
	}
	byID := make(map[uuid.UUID]*models.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	for _, t := range tables {
		if t.CurrentOrderID == nil {
			continue
		}
		if order, ok := byID[*t.CurrentOrderID]; ok {
			t.CurrentOrder = order
		} else {
			s.logger.Warn("table references missing order",
				zap.String("table_id", t.ID.String()),
				zap.String("order_id", t.CurrentOrderID.String()))
		}
	}
	return tables, nil
}

func (s *tableService) Occupy(ctx context.Context, tenantID, tableID, orderID uuid.UUID) error {
	if err := s.tableRepo.Occupy(ctx, tenantID, tableID, orderID); err != nil {
		return wrapStoreError("occupy table", err)
	}
	return nil
}

func (s *tableService) Release(ctx context.Context, tenantID, tableID uuid.UUID) error {
	if err := s.tableRepo.Release(ctx, tenantID, tableID); err != nil {
		return wrapStoreError("release table", err)
	}
	return nil
}
