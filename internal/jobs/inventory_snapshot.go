package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinepos/internal/models"
	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const snapshotPageSize = 500

// SnapshotWriter stores a JSON document under objectName.
type SnapshotWriter interface {
	PutJSON(ctx context.Context, objectName string, v any) error
}

// InventorySnapshot is the document written per tenant: current stock plus
// the journal rows written during the window.
type InventorySnapshot struct {
	TenantID    uuid.UUID               `json:"tenantId"`
	TakenAt     time.Time               `json:"takenAt"`
	WindowStart time.Time               `json:"windowStart"`
	Items       []*models.InventoryItem `json:"items"`
	Movements   []*models.StockMovement `json:"movements"`
}

type InventorySnapshotJob struct {
	inventoryRepo repositories.InventoryRepository
	writer        SnapshotWriter
	window        time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewInventorySnapshotJob(inventoryRepo repositories.InventoryRepository, writer SnapshotWriter, window time.Duration, logger *zap.Logger) *InventorySnapshotJob {
	return &InventorySnapshotJob{
		inventoryRepo: inventoryRepo,
		writer:        writer,
		window:        window,
		logger:        logger,
		now:           time.Now,
	}
}

// SnapshotObjectName is snapshots/<tenant>/<UTC timestamp>.json.
func SnapshotObjectName(tenantID uuid.UUID, takenAt time.Time) string {
	return fmt.Sprintf("snapshots/%s/%s.json", tenantID, takenAt.UTC().Format("20060102T150405Z"))
}

func (j *InventorySnapshotJob) Run(ctx context.Context) error {
	tenants, err := j.inventoryRepo.ListTenantIDs(ctx)
	if err != nil {
		j.logger.Error("snapshot could not list tenants", zap.Error(err))
		return err
	}

	takenAt := j.now()
	var errs []error
	for _, tenantID := range tenants {
		if err := j.snapshotTenant(ctx, tenantID, takenAt); err != nil {
			j.logger.Error("inventory snapshot failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
			errs = append(errs, err)
		}
	}

	j.logger.Info("inventory snapshot completed", zap.Int("tenants", len(tenants)), zap.Int("failed", len(errs)))
	return errors.Join(errs...)
}

func (j *InventorySnapshotJob) snapshotTenant(ctx context.Context, tenantID uuid.UUID, takenAt time.Time) error {
	var items []*models.InventoryItem
	for offset := 0; ; offset += snapshotPageSize {
		page, err := j.inventoryRepo.List(ctx, tenantID, snapshotPageSize, offset)
		if err != nil {
			return err
		}
		items = append(items, page...)
		if len(page) < snapshotPageSize {
			break
		}
	}

	windowStart := takenAt.Add(-j.window)
	movements, err := j.inventoryRepo.ListMovementsSince(ctx, tenantID, windowStart)
	if err != nil {
		return err
	}

	return j.writer.PutJSON(ctx, SnapshotObjectName(tenantID, takenAt), InventorySnapshot{
		TenantID:    tenantID,
		TakenAt:     takenAt,
		WindowStart: windowStart,
		Items:       items,
		Movements:   movements,
	})
}
