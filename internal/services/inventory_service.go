package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService is the stock ledger. Quantities change only through
// Deduct and Restock, each a single atomic delta with a journal row.
type InventoryService interface {
	Create(ctx context.Context, tenantID uuid.UUID, item *models.InventoryItem) error
	Get(ctx context.Context, tenantID, id uuid.UUID) (*models.InventoryItem, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error)
	ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]*models.InventoryItem, error)
	Deduct(ctx context.Context, tenantID, itemID uuid.UUID, amount float64, referenceID *uuid.UUID) (*models.StockMovement, error)
	Restock(ctx context.Context, tenantID, itemID uuid.UUID, amount float64, newCostPerUnit *float64) (*models.StockMovement, error)
	Movements(ctx context.Context, tenantID, itemID uuid.UUID, limit int) ([]*models.StockMovement, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	logger        *zap.Logger
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, logger *zap.Logger) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (s *inventoryService) Create(ctx context.Context, tenantID uuid.UUID, item *models.InventoryItem) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Unit = strings.TrimSpace(item.Unit)
	if err := common.ValidateRequiredString(item.Name, "name"); err != nil {
		return common.NewValidationError("name", err.Error())
	}
	if err := common.ValidateRequiredString(item.Unit, "unit"); err != nil {
		return common.NewValidationError("unit", err.Error())
	}
	if err := validateAmount("quantity", item.Quantity); err != nil {
		return err
	}
	if err := validateAmount("costPerUnit", item.CostPerUnit); err != nil {
		return err
	}
	if err := validateAmount("lowStockThreshold", item.LowStockThreshold); err != nil {
		return err
	}

	item.ID = uuid.New()
	item.TenantID = tenantID
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return wrapStoreError("create inventory item", err)
	}
	return nil
}

func (s *inventoryService) Get(ctx context.Context, tenantID, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, wrapStoreError("get inventory item", err)
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	items, err := s.inventoryRepo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, wrapStoreError("list inventory items", err)
	}
	return items, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]*models.InventoryItem, error) {
	items, err := s.inventoryRepo.ListLowStock(ctx, tenantID)
	if err != nil {
		return nil, wrapStoreError("list low stock items", err)
	}
	return items, nil
}

// Deduct subtracts amount from the item. The result may be negative; no
// minimum-stock guard applies. A non-nil referenceID marks an order deduction.
func (s *inventoryService) Deduct(ctx context.Context, tenantID, itemID uuid.UUID, amount float64, referenceID *uuid.UUID) (*models.StockMovement, error) {
	if err := validateAmount("amount", amount); err != nil {
		return nil, err
	}

	reason := models.MovementManualDeduction
	if referenceID != nil {
		reason = models.MovementOrderDeduction
	}

	movement, err := s.inventoryRepo.ApplyDelta(ctx, repositories.StockDelta{
		TenantID:    tenantID,
		ItemID:      itemID,
		Change:      -amount,
		Reason:      reason,
		ReferenceID: referenceID,
	})
	if err != nil {
		return nil, wrapStoreError("deduct inventory", err)
	}

	if movement.QuantityAfter < 0 {
		s.logger.Warn("inventory went negative",
			zap.String("tenant_id", tenantID.String()),
			zap.String("item_id", itemID.String()),
			zap.Float64("quantity", movement.QuantityAfter))
	}
	return movement, nil
}

func (s *inventoryService) Restock(ctx context.Context, tenantID, itemID uuid.UUID, amount float64, newCostPerUnit *float64) (*models.StockMovement, error) {
	if err := validateAmount("amount", amount); err != nil {
		return nil, err
	}
	if newCostPerUnit != nil {
		if err := validateAmount("costPerUnit", *newCostPerUnit); err != nil {
			return nil, err
		}
	}

	movement, err := s.inventoryRepo.ApplyDelta(ctx, repositories.StockDelta{
		TenantID:    tenantID,
		ItemID:      itemID,
		Change:      amount,
		Reason:      models.MovementRestock,
		CostPerUnit: newCostPerUnit,
	})
	if err != nil {
		return nil, wrapStoreError("restock inventory", err)
	}
	return movement, nil
}

func (s *inventoryService) Movements(ctx context.Context, tenantID, itemID uuid.UUID, limit int) ([]*models.StockMovement, error) {
	limit, _ = common.ValidatePaginationParams(limit, 0)
	if _, err := s.inventoryRepo.GetByID(ctx, tenantID, itemID); err != nil {
		return nil, wrapStoreError("get inventory item", err)
	}
	movements, err := s.inventoryRepo.ListMovements(ctx, tenantID, itemID, limit)
	if err != nil {
		return nil, wrapStoreError("list stock movements", err)
	}
	return movements, nil
}

// validateAmount rejects NaN, infinities and negative values.
func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return common.NewValidationError(field, "must be a finite number")
	}
	if v < 0 {
		return common.NewValidationError(field, "must not be negative")
	}
	return nil
}

// wrapStoreError passes typed errors through and turns anything else into a
// PersistenceError.
func wrapStoreError(op string, err error) error {
	var validationErr *common.ValidationError
	if common.IsNotFound(err) || errors.As(err, &validationErr) {
		return err
	}
	var persistenceErr *common.PersistenceError
	if errors.As(err, &persistenceErr) {
		return err
	}
	return &common.PersistenceError{Op: op, Err: err}
}
