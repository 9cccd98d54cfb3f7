package middleware

import (
	"github.com/labstack/echo/v4"
)

// APIVersion describes one mounted API version.
type APIVersion struct {
	Version string `json:"version"`
	Message string `json:"message,omitempty"`
}

type VersionMiddleware struct {
	supportedVersions map[string]APIVersion
	defaultVersion    string
}

func NewVersionMiddleware() *VersionMiddleware {
	return &VersionMiddleware{
		supportedVersions: map[string]APIVersion{
			"v1": {Version: "v1", Message: "Current stable API version"},
		},
		defaultVersion: "v1",
	}
}

// VersionHeader stamps responses with the API version.
func (vm *VersionMiddleware) VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-API-Version", version)
			if ver, exists := vm.supportedVersions[version]; exists && ver.Message != "" {
				h.Set("X-API-Message", ver.Message)
			}
			return next(c)
		}
	}
}

// VersionRoute mounts a /<version> group with the version headers applied.
func (vm *VersionMiddleware) VersionRoute(e *echo.Echo, version string, m ...echo.MiddlewareFunc) *echo.Group {
	group := e.Group("/" + version)
	group.Use(vm.VersionHeader(version))
	group.Use(m...)
	return group
}

// GetCurrentVersion is the version new routes are mounted under.
func (vm *VersionMiddleware) GetCurrentVersion() string {
	return vm.defaultVersion
}
