package controller

import "github.com/labstack/echo/v4"

type FeedingController interface {
	List(c echo.Context) error
	Upsert(c echo.Context) error
	Delete(c echo.Context) error
}
