package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	inventoryRepo *MockInventoryRepository
	service       InventoryService
	ctx           context.Context
	tenantID      uuid.UUID
	itemID        uuid.UUID
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.inventoryRepo = new(MockInventoryRepository)
	suite.service = NewInventoryService(suite.inventoryRepo, zap.NewNop())
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
	suite.itemID = uuid.New()
}

func (suite *InventoryServiceTestSuite) TearDownTest() {
	suite.inventoryRepo.AssertExpectations(suite.T())
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}

func (suite *InventoryServiceTestSuite) TestCreate_AssignsIdentity() {
	item := &models.InventoryItem{Name: " Paneer ", Unit: "kg", Quantity: 20, CostPerUnit: 320, LowStockThreshold: 2}
	suite.inventoryRepo.On("Create", suite.ctx, item).Return(nil).Once()

	err := suite.service.Create(suite.ctx, suite.tenantID, item)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Paneer", item.Name)
	assert.Equal(suite.T(), suite.tenantID, item.TenantID)
	assert.NotEqual(suite.T(), uuid.Nil, item.ID)
}

func (suite *InventoryServiceTestSuite) TestCreate_Validation() {
	tests := []struct {
		name  string
		item  *models.InventoryItem
		field string
	}{
		{"blank name", &models.InventoryItem{Unit: "kg"}, "name"},
		{"blank unit", &models.InventoryItem{Name: "Rice"}, "unit"},
		{"negative quantity", &models.InventoryItem{Name: "Rice", Unit: "kg", Quantity: -1}, "quantity"},
		{"NaN cost", &models.InventoryItem{Name: "Rice", Unit: "kg", CostPerUnit: math.NaN()}, "costPerUnit"},
		{"infinite threshold", &models.InventoryItem{Name: "Rice", Unit: "kg", LowStockThreshold: math.Inf(1)}, "lowStockThreshold"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.service.Create(suite.ctx, suite.tenantID, tt.item)
			var validationErr *common.ValidationError
			require.ErrorAs(suite.T(), err, &validationErr)
			assert.Equal(suite.T(), tt.field, validationErr.Field)
		})
	}
}

func (suite *InventoryServiceTestSuite) TestDeduct_OrderReference() {
	orderID := uuid.New()
	want := repositories.StockDelta{
		TenantID:    suite.tenantID,
		ItemID:      suite.itemID,
		Change:      -0.4,
		Reason:      models.MovementOrderDeduction,
		ReferenceID: &orderID,
	}
	suite.inventoryRepo.On("ApplyDelta", suite.ctx, want).
		Return(&models.StockMovement{Change: -0.4, QuantityAfter: 19.6, Reason: models.MovementOrderDeduction}, nil).Once()

	movement, err := suite.service.Deduct(suite.ctx, suite.tenantID, suite.itemID, 0.4, &orderID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 19.6, movement.QuantityAfter)
}

func (suite *InventoryServiceTestSuite) TestDeduct_ManualAndNegativeResult() {
	suite.inventoryRepo.On("ApplyDelta", suite.ctx, mock.MatchedBy(func(d repositories.StockDelta) bool {
		return d.Reason == models.MovementManualDeduction && d.ReferenceID == nil && d.Change == -5
	})).Return(&models.StockMovement{QuantityAfter: -3}, nil).Once()

	movement, err := suite.service.Deduct(suite.ctx, suite.tenantID, suite.itemID, 5, nil)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), -3.0, movement.QuantityAfter)
}

func (suite *InventoryServiceTestSuite) TestDeduct_RejectsBadAmounts() {
	for _, amount := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := suite.service.Deduct(suite.ctx, suite.tenantID, suite.itemID, amount, nil)
		var validationErr *common.ValidationError
		require.ErrorAs(suite.T(), err, &validationErr)
		assert.Equal(suite.T(), "amount", validationErr.Field)
	}
	suite.inventoryRepo.AssertNotCalled(suite.T(), "ApplyDelta", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestDeduct_UnknownItem() {
	suite.inventoryRepo.On("ApplyDelta", suite.ctx, mock.Anything).
		Return(nil, common.NewNotFoundError("inventory item", suite.itemID)).Once()

	_, err := suite.service.Deduct(suite.ctx, suite.tenantID, suite.itemID, 1, nil)

	assert.True(suite.T(), common.IsNotFound(err))
	var persistenceErr *common.PersistenceError
	assert.False(suite.T(), errors.As(err, &persistenceErr))
}

func (suite *InventoryServiceTestSuite) TestDeduct_StoreFailure() {
	suite.inventoryRepo.On("ApplyDelta", suite.ctx, mock.Anything).Return(nil, errors.New("conn closed")).Once()

	_, err := suite.service.Deduct(suite.ctx, suite.tenantID, suite.itemID, 1, nil)

	var persistenceErr *common.PersistenceError
	require.ErrorAs(suite.T(), err, &persistenceErr)
	assert.Equal(suite.T(), "deduct inventory", persistenceErr.Op)
	assert.EqualError(suite.T(), persistenceErr.Err, "conn closed")
}

func (suite *InventoryServiceTestSuite) TestRestock_UpdatesCost() {
	cost := 340.0
	suite.inventoryRepo.On("ApplyDelta", suite.ctx, repositories.StockDelta{
		TenantID:    suite.tenantID,
		ItemID:      suite.itemID,
		Change:      5,
		Reason:      models.MovementRestock,
		CostPerUnit: &cost,
	}).Return(&models.StockMovement{Change: 5, QuantityAfter: 25, Reason: models.MovementRestock}, nil).Once()

	movement, err := suite.service.Restock(suite.ctx, suite.tenantID, suite.itemID, 5, &cost)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 25.0, movement.QuantityAfter)
}

func (suite *InventoryServiceTestSuite) TestRestock_RejectsNegativeCost() {
	cost := -1.0

	_, err := suite.service.Restock(suite.ctx, suite.tenantID, suite.itemID, 5, &cost)

	var validationErr *common.ValidationError
	require.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "costPerUnit", validationErr.Field)
}

func (suite *InventoryServiceTestSuite) TestMovements_UnknownItem() {
	suite.inventoryRepo.On("GetByID", suite.ctx, suite.tenantID, suite.itemID).
		Return(nil, common.NewNotFoundError("inventory item", suite.itemID)).Once()

	_, err := suite.service.Movements(suite.ctx, suite.tenantID, suite.itemID, 10)

	assert.True(suite.T(), common.IsNotFound(err))
}

func (suite *InventoryServiceTestSuite) TestMovements_ClampsLimit() {
	suite.inventoryRepo.On("GetByID", suite.ctx, suite.tenantID, suite.itemID).
		Return(&models.InventoryItem{ID: suite.itemID}, nil).Once()
	suite.inventoryRepo.On("ListMovements", suite.ctx, suite.tenantID, suite.itemID, 1000).
		Return([]*models.StockMovement{}, nil).Once()

	movements, err := suite.service.Movements(suite.ctx, suite.tenantID, suite.itemID, 5000)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), movements)
}

func (suite *InventoryServiceTestSuite) TestListLowStock() {
	items := []*models.InventoryItem{{ID: suite.itemID, Quantity: 1, LowStockThreshold: 2}}
	suite.inventoryRepo.On("ListLowStock", suite.ctx, suite.tenantID).Return(items, nil).Once()

	got, err := suite.service.ListLowStock(suite.ctx, suite.tenantID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), items, got)
}
