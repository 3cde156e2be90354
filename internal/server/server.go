package server

import (
	"github.com/mduy26100/ZTino-Shop-sub000/internal/config"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/handler"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ルーティングを組んでechoを起動する。
func Start(
	cfg config.Config,
	logger *zap.Logger,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	adminOrderH *handler.AdminOrderHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(logger))

	cartH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)
	adminOrderH.RegisterRoutes(e, cfg)

	addr := ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr))

	return e.Start(addr)
}
