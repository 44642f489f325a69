package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/zoomarket/cashbox-system/internal/api/metrics"
	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// RequireRoles enforces a per-route role allow-list. The role is read from the
// context set by Auth, never from the request itself.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
