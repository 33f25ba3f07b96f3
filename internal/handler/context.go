package handler

import (
	"techstore/internal/middleware"

	"github.com/labstack/echo/v4"
)

// セッションミドルウェアが載せた会員IDを取り出す。
func getCustomerIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxCustomerIDKey)
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

func getSessionIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxSessionIDKey)
	sid, ok := v.(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
