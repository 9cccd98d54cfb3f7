package handlers

import (
	"dinepos/internal/middleware"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Routes bundles every handler the HTTP surface mounts. Jobs may be nil.
type Routes struct {
	Health    *HealthHandlers
	Orders    *OrderHandlers
	Inventory *InventoryHandlers
	Products  *ProductHandlers
	Tables    *TableHandlers
	Jobs      *JobHandlers
}

func RegisterRoutes(e *echo.Echo, vm *middleware.VersionMiddleware, r Routes) {
	e.GET("/health", r.Health.HealthCheck)
	e.GET("/health/ready", r.Health.ReadinessCheck)
	e.GET("/health/live", r.Health.LivenessCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := vm.VersionRoute(e, vm.GetCurrentVersion(), middleware.TenantContext())

	v1.POST("/orders", r.Orders.CreateOrder)
	v1.GET("/orders", r.Orders.GetOrders)
	v1.GET("/orders/:id", r.Orders.GetOrderByID)
	v1.PATCH("/orders/:id/status", r.Orders.UpdateOrderStatus)

	v1.GET("/inventory", r.Inventory.GetInventory)
	v1.POST("/inventory", r.Inventory.CreateInventoryItem)
	v1.GET("/inventory/low-stock", r.Inventory.GetLowStock)
	v1.GET("/inventory/:id", r.Inventory.GetInventoryItem)
	v1.POST("/inventory/:id/restock", r.Inventory.Restock)
	v1.POST("/inventory/:id/deduct", r.Inventory.Deduct)
	v1.GET("/inventory/:id/movements", r.Inventory.GetMovements)

	v1.GET("/products", r.Products.GetProducts)
	v1.POST("/products", r.Products.CreateProduct)
	v1.GET("/products/:id", r.Products.GetProductByID)
	v1.PUT("/products/:id", r.Products.UpdateProduct)
	v1.GET("/products/:id/recipe", r.Products.GetRecipe)

	v1.GET("/tables", r.Tables.GetTables)
	v1.POST("/tables", r.Tables.CreateTable)
	v1.GET("/tables/:id", r.Tables.GetTableByID)
	v1.POST("/tables/:id/release", r.Tables.ReleaseTable)

	if r.Jobs != nil {
		admin := e.Group("/admin")
		admin.GET("/jobs", r.Jobs.GetJobs)
		admin.POST("/jobs/:name/run", r.Jobs.RunJob)
	}
}
