package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"garden/pkg/garden/controller"
	"garden/pkg/middleware"
)

func New(
	e *echo.Echo,
	gardenCtrl controller.GardenController,
	schedCtrl interface {
		Get(echo.Context) error
		Due(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Metrics())

	e.GET("/", gardenCtrl.Dashboard)
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// single endpoint action protocol (?action=list, action=add|log bodies)
	e.GET("/garden", gardenCtrl.Legacy)
	e.POST("/garden", gardenCtrl.Legacy)

	g := e.Group("/plants")
	g.GET("", gardenCtrl.List)
	g.POST("", gardenCtrl.Create)
	g.GET("/export.xlsx", gardenCtrl.Export)
	g.GET("/due", schedCtrl.Due)
	g.POST("/:id/events", gardenCtrl.LogCare)
	g.GET("/:id/schedule", schedCtrl.Get)
	return e
}
