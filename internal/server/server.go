package server

import (
	"techstore/internal/config"
	"techstore/internal/handler"
	appmw "techstore/internal/middleware"
	"techstore/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo *echo.Echo
}

func New(
	cfg config.Config,
	sessions session.Store,
	productH *handler.ProductHandler,
	purchaseH *handler.PurchaseHandler,
	userH *handler.UserHandler,
	cartH *handler.CartHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	//全ルートでセッションを読む（無くてもエラーにしない）
	e.Use(appmw.LoadSession(sessions, cfg.SessionCookie))

	registerRoutes(e, productH, purchaseH, userH, cartH)

	return &Server{echo: e}
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
