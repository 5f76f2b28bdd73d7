package middleware

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLog tags each request with an id (kept from X-Request-Id when the
// client sends one) and writes one access line when it completes.
func RequestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set("request_id", rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			log.Printf("[http] %s %s %s %d %s", rid, c.Request().Method, c.Request().URL.Path,
				c.Response().Status, time.Since(start).Round(time.Microsecond))
			return nil
		}
	}
}
