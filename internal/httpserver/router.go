package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/Skotchmaster/storefront/internal/middleware/logging"
	"github.com/Skotchmaster/storefront/internal/uploads"
)

type Deps struct {
	Files  *uploads.FileHTTP
	Logger *slog.Logger
}

func New(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover(), echomw.RequestID())
	if d.Logger != nil {
		e.Use(loggingmw.RequestLogger(d.Logger, "/health"))
	}
	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/uploads/*", d.Files.GetFile)
	e.HEAD("/uploads/*", d.Files.GetFile)
}
