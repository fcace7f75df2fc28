// Package server exposes the small HTTP surface used by the preview and
// daemon commands: the latest rendered report, health, and metrics. The
// one-shot run command never starts it.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bleacherbot/bleacherbot/models"
)

// ReportSource yields the most recently rendered report, or nils when
// no run has completed yet.
type ReportSource interface {
	Last() ([]byte, *models.Report)
}

// Run starts the preview server and blocks until the listener fails.
func Run(addr string, src ReportSource) error {
	logger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e := newEcho(src, logger)
	logger.Printf("preview server listening on %s", addr)
	return e.Start(addr)
}

func newEcho(src ReportSource, logger *log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		logger.Printf("%d %s %s: %v", code, req.Method, req.URL.Path, err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/report", func(c echo.Context) error {
		html, _ := src.Last()
		if html == nil {
			return echo.NewHTTPError(http.StatusNotFound, "no report rendered yet")
		}
		return c.HTMLBlob(http.StatusOK, html)
	})
	e.GET("/report.json", func(c echo.Context) error {
		_, report := src.Last()
		if report == nil {
			return echo.NewHTTPError(http.StatusNotFound, "no report rendered yet")
		}
		return c.JSON(http.StatusOK, report)
	})

	return e
}
