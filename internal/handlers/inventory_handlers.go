package handlers

import (
	"net/http"

	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InventoryHandlers struct {
	inventoryService services.InventoryService
	logger           *zap.Logger
}

func NewInventoryHandlers(inventoryService services.InventoryService, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

type createInventoryRequest struct {
	Name              string  `json:"name"`
	Unit              string  `json:"unit"`
	Quantity          float64 `json:"quantity"`
	CostPerUnit       float64 `json:"costPerUnit"`
	LowStockThreshold float64 `json:"lowStockThreshold"`
	Category          string  `json:"category"`
}

type restockRequest struct {
	Amount         float64  `json:"amount"`
	NewCostPerUnit *float64 `json:"newCostPerUnit,omitempty"`
}

type deductRequest struct {
	Amount      float64 `json:"amount"`
	ReferenceID *string `json:"referenceId,omitempty"`
}

// CreateInventoryItem godoc
// @Summary  Add an ingredient to stock
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID  header  string                  true  "Tenant ID"
// @Param    item         body    createInventoryRequest  true  "Item"
// @Success  201  {object}  models.InventoryItem
// @Failure  400  {object}  common.ErrorResponse
// @Router   /v1/inventory [post]
func (h *InventoryHandlers) CreateInventoryItem(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	var req createInventoryRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item := &models.InventoryItem{
		Name:              req.Name,
		Unit:              req.Unit,
		Quantity:          req.Quantity,
		CostPerUnit:       req.CostPerUnit,
		LowStockThreshold: req.LowStockThreshold,
		Category:          req.Category,
	}
	if err := h.inventoryService.Create(c.Request().Context(), tenantID, item); err != nil {
		return respondError(c, h.logger, "create inventory item", err)
	}
	return c.JSON(http.StatusCreated, item)
}

// GetInventory godoc
// @Summary  List stocked ingredients
// @Tags     inventory
// @Produce  json
// @Param    X-Tenant-ID  header  string  true   "Tenant ID"
// @Param    limit        query   int     false  "Page size"
// @Param    offset       query   int     false  "Offset"
// @Success  200  {object}  map[string]interface{}
// @Router   /v1/inventory [get]
func (h *InventoryHandlers) GetInventory(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	limit, offset := common.ValidatePaginationParams(queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	items, err := h.inventoryService.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return respondError(c, h.logger, "list inventory", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// GetInventoryItem godoc
// @Summary  Get one ingredient
// @Tags     inventory
// @Produce  json
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Param    id           path    string  true  "Item ID"
// @Success  200  {object}  models.InventoryItem
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/inventory/{id} [get]
func (h *InventoryHandlers) GetInventoryItem(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	item, err := h.inventoryService.Get(c.Request().Context(), tenantID, itemID)
	if err != nil {
		return respondError(c, h.logger, "get inventory item", err)
	}
	return c.JSON(http.StatusOK, item)
}

// GetLowStock godoc
// @Summary  Ingredients at or below their threshold
// @Tags     inventory
// @Produce  json
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Success  200  {object}  map[string]interface{}
// @Router   /v1/inventory/low-stock [get]
func (h *InventoryHandlers) GetLowStock(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	items, err := h.inventoryService.ListLowStock(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, h.logger, "list low stock", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// Restock godoc
// @Summary  Add stock, optionally updating the unit cost
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID  header  string          true  "Tenant ID"
// @Param    id           path    string          true  "Item ID"
// @Param    restock      body    restockRequest  true  "Amount"
// @Success  200  {object}  models.StockMovement
// @Failure  400  {object}  common.ErrorResponse
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/inventory/{id}/restock [post]
func (h *InventoryHandlers) Restock(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	movement, err := h.inventoryService.Restock(c.Request().Context(), tenantID, itemID, req.Amount, req.NewCostPerUnit)
	if err != nil {
		return respondError(c, h.logger, "restock inventory", err)
	}
	return c.JSON(http.StatusOK, movement)
}

// Deduct godoc
// @Summary      Remove stock
// @Description  The resulting quantity may be negative.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string         true  "Tenant ID"
// @Param        id           path    string         true  "Item ID"
// @Param        deduct       body    deductRequest  true  "Amount"
// @Success      200  {object}  models.StockMovement
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /v1/inventory/{id}/deduct [post]
func (h *InventoryHandlers) Deduct(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req deductRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	var referenceID *uuid.UUID
	if ref := common.SafeString(req.ReferenceID); ref != "" {
		id, err := common.ValidateUUID(ref, "referenceId")
		if err != nil {
			return common.SendValidationError(c, "referenceId", err.Error())
		}
		referenceID = &id
	}

	movement, err := h.inventoryService.Deduct(c.Request().Context(), tenantID, itemID, req.Amount, referenceID)
	if err != nil {
		return respondError(c, h.logger, "deduct inventory", err)
	}
	return c.JSON(http.StatusOK, movement)
}

// GetMovements godoc
// @Summary  Stock journal for one ingredient, newest first
// @Tags     inventory
// @Produce  json
// @Param    X-Tenant-ID  header  string  true   "Tenant ID"
// @Param    id           path    string  true   "Item ID"
// @Param    limit        query   int     false  "Max rows"
// @Success  200  {object}  map[string]interface{}
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/inventory/{id}/movements [get]
func (h *InventoryHandlers) GetMovements(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	movements, err := h.inventoryService.Movements(c.Request().Context(), tenantID, itemID, queryInt(c, "limit", 0))
	if err != nil {
		return respondError(c, h.logger, "list stock movements", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"movements": movements,
	})
}
