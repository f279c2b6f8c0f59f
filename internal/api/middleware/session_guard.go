package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/session"
)

// SessionGuard gates routes on the reactive session snapshot, mirroring the
// route protection of the original client: while the initial rehydration is
// still in flight callers get a retryable 503 instead of a premature 401.
func SessionGuard(provider *session.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := provider.Snapshot()

			if snap.IsLoading {
				c.Response().Header().Set("Retry-After", "1")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session hydrating")
			}
			if !snap.IsAuthenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			return next(c)
		}
	}
}
