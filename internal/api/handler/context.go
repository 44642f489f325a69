package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/zoomarket/cashbox-system/internal/api/middleware"
	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty id and role prove the
// middleware ran and the token carried a usable identity.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return "", "", domain.ErrInvalidToken
	}
	return userID, role, nil
}
