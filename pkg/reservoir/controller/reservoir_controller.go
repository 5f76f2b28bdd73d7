package controller

import "github.com/labstack/echo/v4"

type ReservoirController interface {
	Upsert(c echo.Context) error
	Get(c echo.Context) error
	Delete(c echo.Context) error
}
