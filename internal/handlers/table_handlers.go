package handlers

import (
	"net/http"

	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TableHandlers struct {
	tableService services.TableService
	logger       *zap.Logger
}

func NewTableHandlers(tableService services.TableService, logger *zap.Logger) *TableHandlers {
	return &TableHandlers{
		tableService: tableService,
		logger:       logger,
	}
}

type createTableRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// CreateTable godoc
// @Summary  Register a dining table
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID  header  string              true  "Tenant ID"
// @Param    table        body    createTableRequest  true  "Table"
// @Success  201  {object}  models.Table
// @Failure  400  {object}  common.ErrorResponse
// @Router   /v1/tables [post]
func (h *TableHandlers) CreateTable(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	var req createTableRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	table := &models.Table{Name: req.Name, Capacity: req.Capacity}
	if err := h.tableService.Create(c.Request().Context(), tenantID, table); err != nil {
		return respondError(c, h.logger, "create table", err)
	}
	return c.JSON(http.StatusCreated, table)
}

// GetTables godoc
// @Summary  All tables with their current order
// @Tags     tables
// @Produce  json
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Success  200  {object}  map[string]interface{}
// @Router   /v1/tables [get]
func (h *TableHandlers) GetTables(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	tables, err := h.tableService.List(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, h.logger, "list tables", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tables": tables,
	})
}

// GetTableByID godoc
// @Summary  Get a table
// @Tags     tables
// @Produce  json
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Param    id           path    string  true  "Table ID"
// @Success  200  {object}  models.Table
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/tables/{id} [get]
func (h *TableHandlers) GetTableByID(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	tableID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	table, err := h.tableService.Get(c.Request().Context(), tenantID, tableID)
	if err != nil {
		return respondError(c, h.logger, "get table", err)
	}
	return c.JSON(http.StatusOK, table)
}

// ReleaseTable godoc
// @Summary  Mark a table available and clear its order
// @Tags     tables
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Param    id           path    string  true  "Table ID"
// @Success  204
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/tables/{id}/release [post]
func (h *TableHandlers) ReleaseTable(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	tableID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.tableService.Release(c.Request().Context(), tenantID, tableID); err != nil {
		return respondError(c, h.logger, "release table", err)
	}
	return c.NoContent(http.StatusNoContent)
}
