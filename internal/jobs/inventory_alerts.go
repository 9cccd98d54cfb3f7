package jobs

import (
	"context"
	"errors"
	"fmt"

	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryAlert is one item at or below its low-stock threshold.
type InventoryAlert struct {
	TenantID  uuid.UUID
	ItemID    uuid.UUID
	ItemName  string
	Unit      string
	Quantity  float64
	Threshold float64
}

type InventoryAlertService struct {
	inventoryRepo repositories.InventoryRepository
	logger        *zap.Logger
}

func NewInventoryAlertService(inventoryRepo repositories.InventoryRepository, logger *zap.Logger) *InventoryAlertService {
	return &InventoryAlertService{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (a *InventoryAlertService) CheckLowStock(ctx context.Context, tenantID uuid.UUID) ([]InventoryAlert, error) {
	items, err := a.inventoryRepo.ListLowStock(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock for tenant %s: %w", tenantID, err)
	}

	alerts := make([]InventoryAlert, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, InventoryAlert{
			TenantID:  tenantID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Unit:      item.Unit,
			Quantity:  item.Quantity,
			Threshold: item.LowStockThreshold,
		})
	}
	return alerts, nil
}

func (a *InventoryAlertService) LogLowStockAlerts(alerts []InventoryAlert) {
	for _, alert := range alerts {
		a.logger.Warn("low stock",
			zap.String("tenant_id", alert.TenantID.String()),
			zap.String("item_id", alert.ItemID.String()),
			zap.String("item", alert.ItemName),
			zap.Float64("quantity", alert.Quantity),
			zap.Float64("threshold", alert.Threshold),
			zap.String("unit", alert.Unit))
	}
}

// ScheduledLowStockCheck checks every tenant with stock. A failing tenant
// does not stop the sweep; all failures are returned together.
func (a *InventoryAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	tenants, err := a.inventoryRepo.ListTenantIDs(ctx)
	if err != nil {
		a.logger.Error("low stock check could not list tenants", zap.Error(err))
		return err
	}

	var errs []error
	total := 0
	for _, tenantID := range tenants {
		alerts, err := a.CheckLowStock(ctx, tenantID)
		if err != nil {
			a.logger.Error("low stock check failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		a.LogLowStockAlerts(alerts)
		total += len(alerts)
	}

	a.logger.Info("low stock check completed", zap.Int("tenants", len(tenants)), zap.Int("alerts", total))
	return errors.Join(errs...)
}
