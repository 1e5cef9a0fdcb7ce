package controller

import "github.com/labstack/echo/v4"

type GardenController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	LogCare(c echo.Context) error
	Legacy(c echo.Context) error
	Dashboard(c echo.Context) error
	Export(c echo.Context) error
}
