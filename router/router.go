package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"brushfuel/pkg/middleware"
)

func New(
	e *echo.Echo,
	logCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		Export(echo.Context) error
		Import(echo.Context) error
	},
	catalogCtrl interface {
		List(echo.Context) error
		Brands(echo.Context) error
		Rated(echo.Context) error
		Upsert(echo.Context) error
		ImportCSV(echo.Context) error
		ImportURL(echo.Context) error
	},
	reportCtrl interface {
		Dashboard(echo.Context) error
		Monthly(echo.Context) error
		Equipment(echo.Context) error
		Ranking(echo.Context) error
		Comparison(echo.Context) error
		ExportMonthly(echo.Context) error
		ExportEquipment(echo.Context) error
		ExportRanking(echo.Context) error
		ExportComparison(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
	logger *zap.Logger,
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger(logger))

	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")

	// fuel log register
	api.POST("/logs", logCtrl.Create)
	api.GET("/logs", logCtrl.List)
	api.PATCH("/logs/:id", logCtrl.Patch)
	api.DELETE("/logs/:id", logCtrl.Delete)
	api.GET("/logs/export", logCtrl.Export)
	api.POST("/logs/import", logCtrl.Import)

	// equipment catalog
	api.GET("/models", catalogCtrl.List)
	api.GET("/models/brands", catalogCtrl.Brands)
	api.GET("/models/rated", catalogCtrl.Rated)
	api.POST("/models", catalogCtrl.Upsert)
	api.POST("/models/import", catalogCtrl.ImportCSV)
	api.POST("/models/import/url", catalogCtrl.ImportURL)

	// dashboard and reports
	api.GET("/dashboard", reportCtrl.Dashboard)
	api.GET("/reports/monthly", reportCtrl.Monthly)
	api.GET("/reports/monthly/export", reportCtrl.ExportMonthly)
	api.GET("/reports/equipment", reportCtrl.Equipment)
	api.GET("/reports/equipment/export", reportCtrl.ExportEquipment)
	api.GET("/reports/ranking", reportCtrl.Ranking)
	api.GET("/reports/ranking/export", reportCtrl.ExportRanking)
	api.GET("/reports/comparison", reportCtrl.Comparison)
	api.GET("/reports/comparison/export", reportCtrl.ExportComparison)

	return e
}
