package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"dinepos/internal/models"
	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// MockInventoryRepository mocks the InventoryRepository interface for testing
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ApplyDelta(ctx context.Context, delta repositories.StockDelta) (*models.StockMovement, error) {
	args := m.Called(ctx, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockMovement), args.Error(1)
}

func (m *MockInventoryRepository) ListMovements(ctx context.Context, tenantID, itemID uuid.UUID, limit int) ([]*models.StockMovement, error) {
	args := m.Called(ctx, tenantID, itemID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockMovement), args.Error(1)
}

func (m *MockInventoryRepository) ListMovementsSince(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]*models.StockMovement, error) {
	args := m.Called(ctx, tenantID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockMovement), args.Error(1)
}

func (m *MockInventoryRepository) ListTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type InventoryAlertServiceTestSuite struct {
	suite.Suite
	inventoryRepo *MockInventoryRepository
	service       *InventoryAlertService
	ctx           context.Context
}

func (suite *InventoryAlertServiceTestSuite) SetupTest() {
	suite.inventoryRepo = new(MockInventoryRepository)
	suite.service = NewInventoryAlertService(suite.inventoryRepo, zap.NewNop())
	suite.ctx = context.Background()
}

func (suite *InventoryAlertServiceTestSuite) TearDownTest() {
	suite.inventoryRepo.AssertExpectations(suite.T())
}

func TestInventoryAlertServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryAlertServiceTestSuite))
}

func (suite *InventoryAlertServiceTestSuite) TestCheckLowStock() {
	tenantID := uuid.New()
	item := &models.InventoryItem{ID: uuid.New(), Name: "Paneer", Unit: "kg", Quantity: 1.5, LowStockThreshold: 2}
	suite.inventoryRepo.On("ListLowStock", suite.ctx, tenantID).Return([]*models.InventoryItem{item}, nil).Once()

	alerts, err := suite.service.CheckLowStock(suite.ctx, tenantID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), alerts, 1)
	assert.Equal(suite.T(), InventoryAlert{
		TenantID:  tenantID,
		ItemID:    item.ID,
		ItemName:  "Paneer",
		Unit:      "kg",
		Quantity:  1.5,
		Threshold: 2,
	}, alerts[0])
}

func (suite *InventoryAlertServiceTestSuite) TestScheduledLowStockCheck_ContinuesPastFailingTenant() {
	healthy, broken := uuid.New(), uuid.New()
	suite.inventoryRepo.On("ListTenantIDs", suite.ctx).Return([]uuid.UUID{broken, healthy}, nil).Once()
	suite.inventoryRepo.On("ListLowStock", suite.ctx, broken).Return(nil, errors.New("timeout")).Once()
	suite.inventoryRepo.On("ListLowStock", suite.ctx, healthy).Return([]*models.InventoryItem{}, nil).Once()

	err := suite.service.ScheduledLowStockCheck(suite.ctx)

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), broken.String())
}

func (suite *InventoryAlertServiceTestSuite) TestScheduledLowStockCheck_TenantListFailure() {
	suite.inventoryRepo.On("ListTenantIDs", suite.ctx).Return(nil, errors.New("db down")).Once()

	err := suite.service.ScheduledLowStockCheck(suite.ctx)

	assert.EqualError(suite.T(), err, "db down")
}
