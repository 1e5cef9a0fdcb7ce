package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"garden/config"
	"garden/router"

	gardenCtrlImp "garden/pkg/garden/controllerImp"
	gardenRepoImp "garden/pkg/garden/repositoryImp"
	healthCtrlImp "garden/pkg/health/controllerImp"
	schedCtrlImp "garden/pkg/schedule/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Backing document (file by default)
	backing, err := gardenRepoImp.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	// 4) Controllers + routes
	r := router.New(
		e,
		gardenCtrlImp.New(backing),
		schedCtrlImp.New(backing),
		healthCtrlImp.NewHealthCtrl(backing),
	)

	// 5) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
