package router

import (
	"github.com/labstack/echo/v4"

	"growlog/pkg/middleware"
)

func New(
	e *echo.Echo,
	cycleCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Summary(echo.Context) error
	},
	logCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Prefill(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	feedingCtrl interface {
		List(echo.Context) error
		Upsert(echo.Context) error
		Delete(echo.Context) error
	},
	reservoirCtrl interface {
		Upsert(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
	},
	nutrientCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Import(echo.Context) error
	},
	mediaCtrl interface {
		UploadLogImage(echo.Context) error
		UploadNutrientImage(echo.Context) error
		Serve(echo.Context) error
	},
	exportCtrl interface{ Export(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
	metrics echo.HandlerFunc,
) *echo.Echo {
	e.Use(middleware.RequestLog())

	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", metrics)
	e.GET("/media/*", mediaCtrl.Serve)

	e.GET("/cycles", cycleCtrl.List)
	e.POST("/cycles", cycleCtrl.Create)

	c := e.Group("/cycles/:id")
	c.GET("", cycleCtrl.Get)
	c.PATCH("", cycleCtrl.Update)
	c.DELETE("", cycleCtrl.Delete)
	c.GET("/summary", cycleCtrl.Summary)
	c.GET("/export.xlsx", exportCtrl.Export)

	c.GET("/logs", logCtrl.List)
	c.POST("/logs", logCtrl.Create)
	c.POST("/logs/prefill", logCtrl.Prefill)
	c.GET("/logs/:log_id", logCtrl.Get)
	c.PATCH("/logs/:log_id", logCtrl.Update)
	c.DELETE("/logs/:log_id", logCtrl.Delete)
	c.POST("/logs/:log_id/image", mediaCtrl.UploadLogImage)

	c.GET("/logs/:log_id/nutrients", feedingCtrl.List)
	c.POST("/logs/:log_id/nutrients", feedingCtrl.Upsert)
	c.DELETE("/logs/:log_id/nutrients/:nutrient_log_id", feedingCtrl.Delete)

	c.GET("/logs/:log_id/reservoir", reservoirCtrl.Get)
	c.POST("/logs/:log_id/reservoir", reservoirCtrl.Upsert)
	c.DELETE("/logs/:log_id/reservoir", reservoirCtrl.Delete)

	e.GET("/nutrients", nutrientCtrl.List)
	e.POST("/nutrients", nutrientCtrl.Create)
	e.POST("/nutrients/import", nutrientCtrl.Import)
	e.GET("/nutrients/:id", nutrientCtrl.Get)
	e.PATCH("/nutrients/:id", nutrientCtrl.Update)
	e.DELETE("/nutrients/:id", nutrientCtrl.Delete)
	e.POST("/nutrients/:id/image", mediaCtrl.UploadNutrientImage)
	return e
}
