package middleware

import (
	"dinepos/internal/common"

	"github.com/labstack/echo/v4"
)

const TenantHeader = "X-Tenant-ID"

// TenantContext resolves the tenant from the X-Tenant-ID header and stores it
// on the request context. Requests without a valid tenant are rejected.
func TenantContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tenantID, err := common.ValidateUUID(c.Request().Header.Get(TenantHeader), TenantHeader)
			if err != nil {
				return common.SendValidationError(c, TenantHeader, err.Error())
			}

			c.Set("tenant_id", tenantID)
			c.SetRequest(c.Request().WithContext(common.WithTenantID(c.Request().Context(), tenantID)))
			return next(c)
		}
	}
}
