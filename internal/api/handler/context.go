package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty and known (presence proves the middleware ran).
//   - user_id must be non-empty; a token without a subject is structurally
//     valid but operationally unusable; reject with 401.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	roleStr, _ := c.Get("role").(string)
	role = domain.Role(roleStr)
	if roleStr == "" || !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	return userID, role, nil
}
