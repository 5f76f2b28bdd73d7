package controller

import "github.com/labstack/echo/v4"

type MediaController interface {
	UploadLogImage(c echo.Context) error
	UploadNutrientImage(c echo.Context) error
	Serve(c echo.Context) error
}
