package repositories

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"dinepos/internal/common"
	"dinepos/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	repo      ProductRepository
	tenantID  uuid.UUID
	productID uuid.UUID
	paneerID  uuid.UUID
	ctx       context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewProductRepo(mock)
	suite.tenantID = uuid.New()
	suite.productID = uuid.New()
	suite.paneerID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func (suite *ProductRepoTestSuite) recipeJSON() []byte {
	data, err := json.Marshal([]models.RecipeEntry{{IngredientID: suite.paneerID, Quantity: 0.2}})
	require.NoError(suite.T(), err)
	return data
}

func (suite *ProductRepoTestSuite) TestCreate_EncodesRecipe() {
	now := time.Now()
	product := &models.Product{
		ID:          suite.productID,
		TenantID:    suite.tenantID,
		Name:        "Paneer Tikka",
		Category:    "starters",
		Price:       250,
		DietaryType: models.DietaryVeg,
		Available:   true,
		Recipe:      []models.RecipeEntry{{IngredientID: suite.paneerID, Quantity: 0.2}},
	}

	suite.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs(suite.productID, suite.tenantID, "Paneer Tikka", "starters", 250.0, "veg", true, suite.recipeJSON()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := suite.repo.Create(suite.ctx, product)
	assert.NoError(suite.T(), err)
}

func (suite *ProductRepoTestSuite) TestCreate_NilRecipeStoredAsEmptyArray() {
	now := time.Now()
	product := &models.Product{ID: suite.productID, TenantID: suite.tenantID, Name: "Water", DietaryType: models.DietaryVegan}

	suite.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs(suite.productID, suite.tenantID, "Water", "", 0.0, "vegan", false, []byte("[]")).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, product))
}

func (suite *ProductRepoTestSuite) TestGetByID_DecodesRecipe() {
	now := time.Now()
	suite.mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE tenant_id = $1 AND id = $2")).
		WithArgs(suite.tenantID, suite.productID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "tenant_id", "name", "category", "price", "dietary_type", "available", "recipe", "created_at", "updated_at"}).
			AddRow(suite.productID, suite.tenantID, "Paneer Tikka", "starters", 250.0, "veg", true, suite.recipeJSON(), now, now))

	product, err := suite.repo.GetByID(suite.ctx, suite.tenantID, suite.productID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DietaryVeg, product.DietaryType)
	require.Len(suite.T(), product.Recipe, 1)
	assert.Equal(suite.T(), suite.paneerID, product.Recipe[0].IngredientID)
	assert.Equal(suite.T(), 0.2, product.Recipe[0].Quantity)
}

func (suite *ProductRepoTestSuite) TestUpdate_NotFound() {
	product := &models.Product{ID: suite.productID, TenantID: suite.tenantID, Name: "Gone", DietaryType: models.DietaryVeg}

	suite.mock.ExpectQuery(regexp.QuoteMeta("UPDATE products")).
		WithArgs("Gone", "", 0.0, "veg", false, []byte("[]"), suite.tenantID, suite.productID).
		WillReturnError(pgx.ErrNoRows)

	err := suite.repo.Update(suite.ctx, product)
	assert.True(suite.T(), common.IsNotFound(err))
}

func (suite *ProductRepoTestSuite) TestList_CategoryFilter() {
	now := time.Now()
	suite.mock.ExpectQuery(regexp.QuoteMeta("($2 = '' OR category = $2)")).
		WithArgs(suite.tenantID, "starters", 50, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "tenant_id", "name", "category", "price", "dietary_type", "available", "recipe", "created_at", "updated_at"}).
			AddRow(suite.productID, suite.tenantID, "Paneer Tikka", "starters", 250.0, "veg", true, []byte("[]"), now, now))

	products, err := suite.repo.List(suite.ctx, suite.tenantID, "starters", 50, 0)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	assert.Empty(suite.T(), products[0].Recipe)
}

func (suite *ProductRepoTestSuite) TestGetRecipe() {
	suite.mock.ExpectQuery(regexp.QuoteMeta("SELECT recipe FROM products")).
		WithArgs(suite.tenantID, suite.productID).
		WillReturnRows(pgxmock.NewRows([]string{"recipe"}).AddRow(suite.recipeJSON()))

	recipe, err := suite.repo.GetRecipe(suite.ctx, suite.tenantID, suite.productID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []models.RecipeEntry{{IngredientID: suite.paneerID, Quantity: 0.2}}, recipe)
}

func (suite *ProductRepoTestSuite) TestGetRecipe_UnknownProduct() {
	suite.mock.ExpectQuery(regexp.QuoteMeta("SELECT recipe FROM products")).
		WithArgs(suite.tenantID, suite.productID).
		WillReturnError(pgx.ErrNoRows)

	recipe, err := suite.repo.GetRecipe(suite.ctx, suite.tenantID, suite.productID)
	assert.Nil(suite.T(), recipe)
	assert.True(suite.T(), common.IsNotFound(err))
}
