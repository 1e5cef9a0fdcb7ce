// Command garden-cgi serves one request per process through the CGI
// interface, loading and saving the garden document on every invocation.
package main

import (
	"context"
	"log"
	"net/http/cgi"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"garden/config"
	"garden/router"

	gardenCtrlImp "garden/pkg/garden/controllerImp"
	gardenRepoImp "garden/pkg/garden/repositoryImp"
	healthCtrlImp "garden/pkg/health/controllerImp"
	"garden/pkg/middleware"
	schedCtrlImp "garden/pkg/schedule/controllerImp"
)

func main() {
	// stdout carries the CGI response
	log.SetOutput(os.Stderr)

	cfg := config.Load()
	backing, err := gardenRepoImp.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	e := echo.New()
	e.Pre(middleware.CGIPath(os.Getenv("PATH_INFO"), "/garden"))
	e.Use(echoMiddleware.Recover())
	router.New(
		e,
		gardenCtrlImp.New(backing),
		schedCtrlImp.New(backing),
		healthCtrlImp.NewHealthCtrl(backing),
	)

	if err := cgi.Serve(e); err != nil {
		log.Fatalf("cgi: %v", err)
	}
}
