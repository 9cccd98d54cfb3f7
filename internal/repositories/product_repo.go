package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dinepos/internal/common"
	"dinepos/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	List(ctx context.Context, tenantID uuid.UUID, category string, limit, offset int) ([]*models.Product, error)
	GetRecipe(ctx context.Context, tenantID, productID uuid.UUID) ([]models.RecipeEntry, error)
}

type productRepo struct {
	db DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, tenant_id, name, category, price, dietary_type, available, recipe, created_at, updated_at`

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	recipe, err := marshalRecipe(product.Recipe)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (id, tenant_id, name, category, price, dietary_type, available, recipe, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = conn(ctx, r.db).QueryRow(ctx, query,
		product.ID, product.TenantID, product.Name, product.Category, product.Price,
		string(product.DietaryType), product.Available, recipe,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 AND id = $2`
	product, err := scanProduct(conn(ctx, r.db).QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("product", id)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	recipe, err := marshalRecipe(product.Recipe)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $1, category = $2, price = $3, dietary_type = $4, available = $5, recipe = $6, updated_at = NOW()
		WHERE tenant_id = $7 AND id = $8
		RETURNING created_at, updated_at
	`
	err = conn(ctx, r.db).QueryRow(ctx, query,
		product.Name, product.Category, product.Price, string(product.DietaryType),
		product.Available, recipe, product.TenantID, product.ID,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewNotFoundError("product", product.ID)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// List returns the tenant's products, optionally restricted to one category.
func (r *productRepo) List(ctx context.Context, tenantID uuid.UUID, category string, limit, offset int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 AND ($2 = '' OR category = $2) ORDER BY category, name LIMIT $3 OFFSET $4`
	rows, err := conn(ctx, r.db).Query(ctx, query, tenantID, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// GetRecipe reads only the recipe column of a product.
func (r *productRepo) GetRecipe(ctx context.Context, tenantID, productID uuid.UUID) ([]models.RecipeEntry, error) {
	var raw []byte
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT recipe FROM products WHERE tenant_id = $1 AND id = $2`, tenantID, productID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("product", productID)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return unmarshalRecipe(raw)
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	product := &models.Product{}
	var dietary string
	var recipe []byte
	err := row.Scan(&product.ID, &product.TenantID, &product.Name, &product.Category, &product.Price,
		&dietary, &product.Available, &recipe, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	product.DietaryType = models.DietaryType(dietary)
	if product.Recipe, err = unmarshalRecipe(recipe); err != nil {
		return nil, err
	}
	return product, nil
}

func marshalRecipe(recipe []models.RecipeEntry) ([]byte, error) {
	if recipe == nil {
		recipe = []models.RecipeEntry{}
	}
	data, err := json.Marshal(recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe: %w", err)
	}
	return data, nil
}

func unmarshalRecipe(raw []byte) ([]models.RecipeEntry, error) {
	recipe := []models.RecipeEntry{}
	if len(raw) == 0 {
		return recipe, nil
	}
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	return recipe, nil
}
