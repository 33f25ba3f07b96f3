package server

import (
	"techstore/internal/handler"

	"github.com/labstack/echo/v4"
)

func registerRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	purchaseH *handler.PurchaseHandler,
	userH *handler.UserHandler,
	cartH *handler.CartHandler,
) {
	productH.RegisterRoutes(e)
	purchaseH.RegisterRoutes(e)
	userH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
}
