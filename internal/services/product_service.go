package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"dinepos/internal/caching"
	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService is the recipe catalog: menu items and the ingredients each
// unit consumes.
type ProductService interface {
	Create(ctx context.Context, tenantID uuid.UUID, product *models.Product) error
	Get(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, tenantID uuid.UUID, category string, limit, offset int) ([]*models.Product, error)
	Update(ctx context.Context, tenantID uuid.UUID, product *models.Product) error
	ResolveRecipe(ctx context.Context, tenantID, productID uuid.UUID) ([]models.RecipeEntry, error)
}

type productService struct {
	productRepo repositories.ProductRepository
	cache       caching.RecipeCache
	logger      *zap.Logger
}

// NewProductService builds the catalog. cache may be nil, in which case every
// recipe is read from the database.
func NewProductService(productRepo repositories.ProductRepository, cache caching.RecipeCache, logger *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *productService) Create(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	product.ID = uuid.New()
	product.TenantID = tenantID
	if err := s.productRepo.Create(ctx, product); err != nil {
		return wrapStoreError("create product", err)
	}
	return nil
}

func (s *productService) Get(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, wrapStoreError("get product", err)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, tenantID uuid.UUID, category string, limit, offset int) ([]*models.Product, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	products, err := s.productRepo.List(ctx, tenantID, strings.TrimSpace(category), limit, offset)
	if err != nil {
		return nil, wrapStoreError("list products", err)
	}
	return products, nil
}

// Update replaces the product's editable fields. Orders already placed keep
// their own snapshot of name and price.
func (s *productService) Update(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	product.TenantID = tenantID
	if err := s.productRepo.Update(ctx, product); err != nil {
		return wrapStoreError("update product", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteRecipe(ctx, tenantID, product.ID); err != nil {
			s.logger.Warn("failed to invalidate recipe cache",
				zap.String("product_id", product.ID.String()), zap.Error(err))
		}
	}
	return nil
}

// ResolveRecipe returns the product's recipe, or an empty list when it has
// none. It fails with a NotFoundError for an unknown product.
func (s *productService) ResolveRecipe(ctx context.Context, tenantID, productID uuid.UUID) ([]models.RecipeEntry, error) {
	if s.cache != nil {
		recipe, found, err := s.cache.GetRecipe(ctx, tenantID, productID)
		if err != nil {
			s.logger.Warn("recipe cache read failed", zap.String("product_id", productID.String()), zap.Error(err))
		} else if found {
			return recipe, nil
		}
	}

	recipe, err := s.productRepo.GetRecipe(ctx, tenantID, productID)
	if err != nil {
		return nil, wrapStoreError("resolve recipe", err)
	}

	if s.cache != nil {
		if err := s.cache.SetRecipe(ctx, tenantID, productID, recipe); err != nil {
			s.logger.Warn("recipe cache write failed", zap.String("product_id", productID.String()), zap.Error(err))
		}
	}
	return recipe, nil
}

func validateProduct(product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.TrimSpace(product.Category)
	if err := common.ValidateRequiredString(product.Name, "name"); err != nil {
		return common.NewValidationError("name", err.Error())
	}
	if math.IsNaN(product.Price) || math.IsInf(product.Price, 0) || product.Price < 0 {
		return common.NewValidationError("price", "must be a finite, non-negative number")
	}
	if product.DietaryType == "" {
		product.DietaryType = models.DietaryVeg
	}
	if !product.DietaryType.Valid() {
		return common.NewValidationError("dietaryType", "must be one of veg, non_veg, vegan")
	}

	for i, entry := range product.Recipe {
		field := fmt.Sprintf("recipe[%d]", i)
		if entry.IngredientID == uuid.Nil {
			return common.NewValidationError(field+".ingredientId", "is required")
		}
		if math.IsNaN(entry.Quantity) || math.IsInf(entry.Quantity, 0) || entry.Quantity <= 0 {
			return common.NewValidationError(field+".quantity", "must be a positive number")
		}
	}
	return nil
}
