package server

import (
	"net/http"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/config"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/handler"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Depsはserverを組み立てるのに必要な部品
type Deps struct {
	Cfg    config.Config
	Logger *zap.Logger
	DB     *gorm.DB

	PlantH    *handler.PlantHandler
	SupplierH *handler.SupplierHandler
	OrderH    *handler.OrderHandler
	AuthH     *handler.AuthHandler
}

// Newはechoを組み立てて返す。起動はしない（テストでも使う）
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger(d.Logger))

	e.GET("/healthz", healthz(d.DB))

	d.PlantH.RegisterRoutes(e, d.Cfg)
	d.SupplierH.RegisterRoutes(e, d.Cfg)
	d.OrderH.RegisterRoutes(e, d.Cfg)
	d.AuthH.RegisterRoutes(e, d.Cfg)

	return e
}

func Start(addr string, d Deps) error {
	e := New(d)
	return e.Start(addr)
}

// DBまで届くかを見るliveness
func healthz(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down"})
		}
		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
