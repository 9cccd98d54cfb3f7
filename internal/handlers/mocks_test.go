package handlers

import (
	"context"

	"dinepos/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, tenantID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, tenantID uuid.UUID, status models.OrderStatus, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, tenantID, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, tenantID, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Create(ctx context.Context, tenantID uuid.UUID, item *models.InventoryItem) error {
	args := m.Called(ctx, tenantID, item)
	return args.Error(0)
}

func (m *MockInventoryService) Get(ctx context.Context, tenantID, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Deduct(ctx context.Context, tenantID, itemID uuid.UUID, amount float64, referenceID *uuid.UUID) (*models.StockMovement, error) {
	args := m.Called(ctx, tenantID, itemID, amount, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockMovement), args.Error(1)
}

func (m *MockInventoryService) Restock(ctx context.Context, tenantID, itemID uuid.UUID, amount float64, newCostPerUnit *float64) (*models.StockMovement, error) {
	args := m.Called(ctx, tenantID, itemID, amount, newCostPerUnit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockMovement), args.Error(1)
}

func (m *MockInventoryService) Movements(ctx context.Context, tenantID, itemID uuid.UUID, limit int) ([]*models.StockMovement, error) {
	args := m.Called(ctx, tenantID, itemID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockMovement), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	args := m.Called(ctx, tenantID, product)
	return args.Error(0)
}

func (m *MockProductService) Get(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, tenantID uuid.UUID, category string, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, tenantID, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	args := m.Called(ctx, tenantID, product)
	return args.Error(0)
}

func (m *MockProductService) ResolveRecipe(ctx context.Context, tenantID, productID uuid.UUID) ([]models.RecipeEntry, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeEntry), args.Error(1)
}

type MockTableService struct {
	mock.Mock
}

func (m *MockTableService) Create(ctx context.Context, tenantID uuid.UUID, table *models.Table) error {
	args := m.Called(ctx, tenantID, table)
	return args.Error(0)
}

func (m *MockTableService) Get(ctx context.Context, tenantID, id uuid.UUID) (*models.Table, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *MockTableService) List(ctx context.Context, tenantID uuid.UUID) ([]*models.Table, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Table), args.Error(1)
}

func (m *MockTableService) Occupy(ctx context.Context, tenantID, tableID, orderID uuid.UUID) error {
	args := m.Called(ctx, tenantID, tableID, orderID)
	return args.Error(0)
}

func (m *MockTableService) Release(ctx context.Context, tenantID, tableID uuid.UUID) error {
	args := m.Called(ctx, tenantID, tableID)
	return args.Error(0)
}

type MockJobRunner struct {
	mock.Mock
}

func (m *MockJobRunner) RunNow(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockJobRunner) GetJobStatus() map[string]interface{} {
	args := m.Called()
	return args.Get(0).(map[string]interface{})
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error { return f.err }
