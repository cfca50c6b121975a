// Package http provides the echo HTTP server for the quotation engine.
package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quotation-engine/internal/assistant"
	"quotation-engine/internal/common/logger"
	"quotation-engine/internal/common/metrics"
)

// NewServer configures the echo instance with middleware, metrics, and all
// engine routes.
func NewServer(svc *assistant.Service, log logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestDuration)

	h := NewHandler(svc, log)
	h.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return e
}

func requestDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		metrics.RequestDuration.WithLabelValues(c.Path()).Observe(time.Since(start).Seconds())
		return err
	}
}
