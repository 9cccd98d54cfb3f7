package handlers

import (
	"net/http"

	"dinepos/internal/common"
	"dinepos/internal/models"
	"dinepos/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderService
	logger       *zap.Logger
}

func NewOrderHandlers(orderService services.OrderService, logger *zap.Logger) *OrderHandlers {
	return &OrderHandlers{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateOrder godoc
// @Summary      Place an order
// @Description  Prices the cart, deducts recipe ingredients from stock and binds the table.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header    string                     true  "Tenant ID"
// @Param        order        body      models.CreateOrderRequest  true  "Cart"
// @Success      201          {object}  models.Order
// @Failure      400          {object}  common.ErrorResponse
// @Failure      404          {object}  common.ErrorResponse
// @Failure      409          {object}  common.ErrorResponse
// @Failure      500          {object}  common.ErrorResponse
// @Router       /v1/orders [post]
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), tenantID, &req)
	if err != nil {
		return respondError(c, h.logger, "create order", err)
	}
	return c.JSON(http.StatusCreated, order)
}

// GetOrders godoc
// @Summary  List orders, newest first
// @Tags     orders
// @Produce  json
// @Param    X-Tenant-ID  header  string  true   "Tenant ID"
// @Param    status       query   string  false  "Filter by status"
// @Param    limit        query   int     false  "Page size"
// @Param    offset       query   int     false  "Offset"
// @Success  200  {object}  map[string]interface{}
// @Router   /v1/orders [get]
func (h *OrderHandlers) GetOrders(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}

	limit, offset := common.ValidatePaginationParams(queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	orders, err := h.orderService.ListOrders(c.Request().Context(), tenantID, models.OrderStatus(c.QueryParam("status")), limit, offset)
	if err != nil {
		return respondError(c, h.logger, "list orders", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"limit":  limit,
		"offset": offset,
	})
}

// GetOrderByID godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    X-Tenant-ID  header  string  true  "Tenant ID"
// @Param    id           path    string  true  "Order ID"
// @Success  200  {object}  models.Order
// @Failure  404  {object}  common.ErrorResponse
// @Router   /v1/orders/{id} [get]
func (h *OrderHandlers) GetOrderByID(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), tenantID, orderID)
	if err != nil {
		return respondError(c, h.logger, "get order", err)
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary      Set an order's status
// @Description  Any enumerated status may follow any other. Serving does not release the table.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                           true  "Tenant ID"
// @Param        id           path    string                           true  "Order ID"
// @Param        status       body    models.UpdateOrderStatusRequest  true  "New status"
// @Success      200  {object}  models.Order
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /v1/orders/{id}/status [patch]
func (h *OrderHandlers) UpdateOrderStatus(c echo.Context) error {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req models.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request().Context(), tenantID, orderID, req.Status)
	if err != nil {
		return respondError(c, h.logger, "update order status", err)
	}
	return c.JSON(http.StatusOK, order)
}
