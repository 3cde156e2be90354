package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// 管理者ロールだけを通すガード。AuthJWTの後ろに置く。
func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxUserRoleKey).(string)
			if !ok || role != "MANAGER" {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}
			return next(c)
		}
	}
}
