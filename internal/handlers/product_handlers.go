package handlers

import (
	"net/http"

	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProductHandlers struct {
	productService services.ProductService
	logger         *zap.Logger
}

func NewProductHandlers(productService services.ProductService, logger *zap.Logger) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
		logger:         logger,
	}
}

type productRequest struct {
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Price       float64              `json:"price"`
	DietaryType models.DietaryType   `json:"dietaryType"`
	Available   *bool                `json:"available,omitempty"`
	Recipe      []models.RecipeEntry `json:"recipe"`
}

func (r productRequest) toProduct() *models.Product {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return &models.Product{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		DietaryType: r.DietaryType,
		Available:   available,
		Recipe:      r.Recipe,
	}
}

// CreateProduct godoc
// @Summary  Add a menu item with its recipe
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID  header  string          true  "Tenant ID"
// @Param    product      body    productRequest  true  "Product"
// @Success  201  {object}  models.Product
// @Failure  400  {object}  common.ErrorResponse
// @Router   /v1/products [post]
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	product := req.toProduct()
	if err := h.productService.Create(c.Request().Context(), tenantID, product); err != nil {
		return respondError(c, h.logger, "create product", err)
	}
	return c.JSON(http.StatusCreated, product)
}

// GetProducts godoc
// @Summary  List menu items
// @Tags     products
// @Produce  json
// @Param    X-Tenant-ID  header  string  true   "Tenant ID"
// @Param    category     query   string  false  "Category filter"
// @Param    limit        query   int     false  "Page size"
// @Param    offset       query   int     false  "Offset"
// @Success  200  {object}  map[string]interface{}
// @Router   /v1/products [get]
func (h *ProductHandlers) GetProducts(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	limit, offset := common.ValidatePaginationParams(queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	products, err := h.productService.List(c.Request().Context(), tenantID, c.QueryParam("category"), limit, offset)
	if err != nil {
		return respondError(c, h.logger, "list products", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetProductByID godoc
// @Summary  Get a menu item
// @Tags     products
// @Produce  json
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Param    id           path    string  true  "Product ID"
// @Success  200  {object}  models.Product
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/products/{id} [get]
func (h *ProductHandlers) GetProductByID(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	product, err := h.productService.Get(c.Request().Context(), tenantID, productID)
	if err != nil {
		return respondError(c, h.logger, "get product", err)
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary      Replace a menu item
// @Description  Existing orders keep the name and price they were placed with.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string          true  "Tenant ID"
// @Param        id           path    string          true  "Product ID"
// @Param        product      body    productRequest  true  "Product"
// @Success      200  {object}  models.Product
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /v1/products/{id} [put]
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	product := req.toProduct()
	product.ID = productID
	if err := h.productService.Update(c.Request().Context(), tenantID, product); err != nil {
		return respondError(c, h.logger, "update product", err)
	}
	return c.JSON(http.StatusOK, product)
}

// GetRecipe godoc
// @Summary  Ingredients consumed by one unit of a product
// @Tags     products
// @Produce  json
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Param    id           path    string  true  "Product ID"
// @Success  200  {object}  map[string]interface{}
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/products/{id}/recipe [get]
func (h *ProductHandlers) GetRecipe(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	recipe, err := h.productService.ResolveRecipe(c.Request().Context(), tenantID, productID)
	if err != nil {
		return respondError(c, h.logger, "resolve recipe", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"productId": productID,
		"recipe":    recipe,
	})
}
