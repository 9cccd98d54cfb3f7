package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dinepos/internal/common"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func tenantFromRequest(c echo.Context) (uuid.UUID, error) {
	tenantID, ok := common.GetTenantIDFromContext(c.Request().Context())
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Tenant not found")
	}
	return tenantID, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	return common.ValidateUUID(c.Param("id"), "id")
}

func queryInt(c echo.Context, name string, fallback int) int {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// respondError logs store failures with their cause and writes the error
// envelope. Clients never see the underlying error text for a 500.
func respondError(c echo.Context, logger *zap.Logger, operation string, err error) error {
	var persistenceErr *common.PersistenceError
	var validationErr *common.ValidationError
	switch {
	case errors.As(err, &persistenceErr):
		logger.Error(operation+" failed",
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Any("applied", persistenceErr.Applied),
			zap.Bool("rolled_back", persistenceErr.RolledBack),
			zap.Error(err))
	case common.IsNotFound(err), errors.As(err, &validationErr):
	default:
		logger.Error(operation+" failed", zap.Error(err))
	}
	return common.SendError(c, operation, err)
}
