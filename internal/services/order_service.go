package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"dinepos/internal/common"
	"dinepos/internal/config"
	"dinepos/internal/events"
	"dinepos/internal/models"
	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	maxNotesLength         = 500
	maxPaymentMethodLength = 30
)

// RecipeResolver looks up the per-unit recipe of a product.
type RecipeResolver interface {
	ResolveRecipe(ctx context.Context, tenantID, productID uuid.UUID) ([]models.RecipeEntry, error)
}

// StockDeductor applies a single atomic ledger decrement.
type StockDeductor interface {
	Deduct(ctx context.Context, tenantID, itemID uuid.UUID, amount float64, referenceID *uuid.UUID) (*models.StockMovement, error)
}

// TableBinder reads and occupies tables.
type TableBinder interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*models.Table, error)
	Occupy(ctx context.Context, tenantID, tableID, orderID uuid.UUID) error
}

// OrderService is the order workflow.
type OrderService interface {
	CreateOrder(ctx context.Context, tenantID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, tenantID uuid.UUID, status models.OrderStatus, limit, offset int) ([]*models.Order, error)
	UpdateOrderStatus(ctx context.Context, tenantID, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo  repositories.OrderRepository
	recipes    RecipeResolver
	ledger     StockDeductor
	tables     TableBinder
	transactor repositories.Transactor
	publisher  events.Publisher
	taxRate    decimal.Decimal
	atomic     bool
	logger     *zap.Logger
}

// NewOrderService wires the workflow. transactor is only used when cfg selects
// the atomic transaction mode.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	recipes RecipeResolver,
	ledger StockDeductor,
	tables TableBinder,
	transactor repositories.Transactor,
	publisher events.Publisher,
	cfg config.OrderConfig,
	logger *zap.Logger,
) OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &orderService{
		orderRepo:  orderRepo,
		recipes:    recipes,
		ledger:     ledger,
		tables:     tables,
		transactor: transactor,
		publisher:  publisher,
		taxRate:    decimal.NewFromFloat(cfg.TaxRate),
		atomic:     cfg.TransactionMode == config.TransactionModeAtomic && transactor != nil,
		logger:     logger,
	}
}

// CreateOrder validates the cart, resolves every recipe, then deducts stock,
// stores the order and binds the table, in that order. In best-effort mode a
// failure after the first deduction leaves earlier steps applied and reports
// them in the returned PersistenceError.
func (s *orderService) CreateOrder(ctx context.Context, tenantID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	lines, tableID, paymentMethod, err := validateOrderRequest(req)
	if err != nil {
		return nil, err
	}

	if tableID != nil {
		table, err := s.tables.Get(ctx, tenantID, *tableID)
		if err != nil {
			return nil, err
		}
		if table.Status == models.TableStatusOccupied {
			return nil, &common.ValidationError{
				Field:   "tableId",
				Message: "table is already occupied",
				Err:     common.ErrTableOccupied,
			}
		}
	}

	recipes, err := s.resolveRecipes(ctx, tenantID, lines)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(lines, s.taxRate)
	plan := PlanDeductions(lines, recipes)

	order := &models.Order{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Items:         lines,
		TotalAmount:   totals.TotalAmount,
		Tax:           totals.Tax,
		FinalAmount:   totals.FinalAmount,
		Status:        models.OrderStatusNew,
		Type:          req.Type,
		TableID:       tableID,
		PaymentMethod: paymentMethod,
	}

	if s.atomic {
		err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
			return s.writeOrder(txCtx, order, plan)
		})
		if err != nil {
			var persistenceErr *common.PersistenceError
			if !errors.As(err, &persistenceErr) {
				persistenceErr = &common.PersistenceError{Op: "create order", Err: err}
			}
			persistenceErr.RolledBack = true
			err = persistenceErr
		}
	} else {
		err = s.writeOrder(ctx, order, plan)
	}
	if err != nil {
		s.logger.Error("order creation failed",
			zap.String("tenant_id", tenantID.String()),
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("type", string(order.Type)),
		zap.Int("deductions", len(plan)),
		zap.Float64("final_amount", order.FinalAmount))

	s.publish(ctx, events.NewOrderEvent(events.OrderCreated, order))
	return order, nil
}

// writeOrder is the mutating phase. Deductions run one at a time in plan
// order so a failure leaves a deterministic prefix applied.
func (s *orderService) writeOrder(ctx context.Context, order *models.Order, plan []Deduction) error {
	var applied []common.AppliedDeduction
	orderID := order.ID

	for _, d := range plan {
		if _, err := s.ledger.Deduct(ctx, order.TenantID, d.ItemID, d.Amount, &orderID); err != nil {
			if common.IsNotFound(err) {
				s.logger.Warn("skipping deduction for unknown ingredient",
					zap.String("order_id", orderID.String()),
					zap.String("product_id", d.ProductID.String()),
					zap.String("item_id", d.ItemID.String()))
				continue
			}
			return persistenceFailure("deduct inventory", err, applied)
		}
		applied = append(applied, common.AppliedDeduction{ItemID: d.ItemID, Amount: d.Amount})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return persistenceFailure("create order", err, applied)
	}

	if order.TableID != nil {
		if err := s.tables.Occupy(ctx, order.TenantID, *order.TableID, order.ID); err != nil {
			return persistenceFailure("occupy table", err, applied)
		}
	}
	return nil
}

// resolveRecipes reads the recipe of every distinct product before anything
// is written. Unknown products resolve to an empty recipe.
func (s *orderService) resolveRecipes(ctx context.Context, tenantID uuid.UUID, lines []models.OrderItem) (map[uuid.UUID][]models.RecipeEntry, error) {
	recipes := make(map[uuid.UUID][]models.RecipeEntry, len(lines))
	for _, line := range lines {
		if _, seen := recipes[line.ProductID]; seen {
			continue
		}
		recipe, err := s.recipes.ResolveRecipe(ctx, tenantID, line.ProductID)
		if err != nil {
			if !common.IsNotFound(err) {
				return nil, err
			}
			s.logger.Warn("ordered product not in catalog",
				zap.String("tenant_id", tenantID.String()),
				zap.String("product_id", line.ProductID.String()))
			recipe = []models.RecipeEntry{}
		}
		recipes[line.ProductID] = recipe
	}
	return recipes, nil
}

func (s *orderService) GetOrder(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, wrapStoreError("get order", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, tenantID uuid.UUID, status models.OrderStatus, limit, offset int) ([]*models.Order, error) {
	if status != "" && !status.Valid() {
		return nil, common.NewValidationError("status", "must be one of NEW, PREPARING, READY, SERVED, CANCELLED")
	}
	limit, offset = common.ValidatePaginationParams(limit, offset)
	orders, err := s.orderRepo.List(ctx, tenantID, status, limit, offset)
	if err != nil {
		return nil, wrapStoreError("list orders", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets any enumerated status regardless of the current one.
// Serving an order does not release its table.
func (s *orderService) UpdateOrderStatus(ctx context.Context, tenantID, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, common.NewValidationError("status", "must be one of NEW, PREPARING, READY, SERVED, CANCELLED")
	}

	current, err := s.orderRepo.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, wrapStoreError("get order", err)
	}

	order, err := s.orderRepo.UpdateStatus(ctx, tenantID, orderID, status)
	if err != nil {
		return nil, wrapStoreError("update order status", err)
	}

	s.logger.Info("order status changed",
		zap.String("order_id", orderID.String()),
		zap.String("from", string(current.Status)),
		zap.String("to", string(order.Status)))

	event := events.NewOrderEvent(events.OrderStatusChanged, order)
	event.PreviousStatus = current.Status
	s.publish(ctx, event)
	return order, nil
}

func (s *orderService) publish(ctx context.Context, event events.OrderEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("event", event.Type),
			zap.String("order_id", event.OrderID.String()),
			zap.Error(err))
	}
}

func persistenceFailure(op string, err error, applied []common.AppliedDeduction) *common.PersistenceError {
	var inner *common.PersistenceError
	if errors.As(err, &inner) {
		err = inner.Err
	}
	return &common.PersistenceError{Op: op, Err: err, Applied: applied}
}

// validateOrderRequest checks the cart before any side effect and converts it
// into the stored line snapshot.
func validateOrderRequest(req *models.CreateOrderRequest) ([]models.OrderItem, *uuid.UUID, *string, error) {
	if req == nil {
		return nil, nil, nil, common.NewValidationError("body", "request body is required")
	}
	if len(req.Items) == 0 {
		return nil, nil, nil, common.NewValidationError("items", "at least one item is required")
	}
	if !req.Type.Valid() {
		return nil, nil, nil, common.NewValidationError("type", "must be one of DINE_IN, TAKEAWAY, DELIVERY")
	}

	lines := make([]models.OrderItem, 0, len(req.Items))
	for i, item := range req.Items {
		field := fmt.Sprintf("items[%d]", i)

		productID, err := common.ValidateUUID(item.ProductID, "_id")
		if err != nil {
			return nil, nil, nil, common.NewValidationError(field+"._id", err.Error())
		}
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, nil, nil, common.NewValidationError(field+".name", "name is required")
		}
		if item.Quantity <= 0 {
			return nil, nil, nil, common.NewValidationError(field+".quantity", "must be a positive integer")
		}
		if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
			return nil, nil, nil, common.NewValidationError(field+".price", "must be a finite, non-negative number")
		}

		notes := item.Notes
		if notes != nil {
			trimmed := *notes
			notes = &trimmed
			if err := common.ValidateOptionalString(notes, "notes", maxNotesLength); err != nil {
				return nil, nil, nil, common.NewValidationError(field+".notes", err.Error())
			}
			if *notes == "" {
				notes = nil
			}
		}

		lines = append(lines, models.OrderItem{
			ProductID: productID,
			Name:      name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Notes:     notes,
		})
	}

	var tableID *uuid.UUID
	if req.TableID != nil && strings.TrimSpace(*req.TableID) != "" {
		id, err := common.ValidateUUID(*req.TableID, "tableId")
		if err != nil {
			return nil, nil, nil, common.NewValidationError("tableId", err.Error())
		}
		tableID = &id
	}
	if req.Type == models.OrderTypeDineIn && tableID == nil {
		return nil, nil, nil, common.NewValidationError("tableId", "tableId is required for dine-in orders")
	}

	var paymentMethod *string
	if req.PaymentMethod != nil {
		pm := *req.PaymentMethod
		if err := common.ValidateOptionalString(&pm, "paymentMethod", maxPaymentMethodLength); err != nil {
			return nil, nil, nil, common.NewValidationError("paymentMethod", err.Error())
		}
		if pm != "" {
			paymentMethod = &pm
		}
	}

	return lines, tableID, paymentMethod, nil
}
