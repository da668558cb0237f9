package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/devproxy"
	"github.com/Skotchmaster/storefront/internal/logging"
	loggingmw "github.com/Skotchmaster/storefront/internal/middleware/logging"
)

func main() {
	cfg := config.Load()
	l := logging.New(cfg.LogLevel).With("service", "devserver")

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover(), echomw.RequestID(), loggingmw.RequestLogger(l))

	if err := devproxy.Register(e, cfg.DevProxy); err != nil {
		l.Error("dev proxy", "error", err)
		os.Exit(1)
	}

	go func() {
		l.Info("dev server listening", "addr", cfg.DevProxy.Addr,
			"static", cfg.DevProxy.StaticDir, "proxy", cfg.DevProxy.Prefix+" -> "+cfg.DevProxy.Target)
		if err := e.Start(cfg.DevProxy.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("dev server error", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("dev server shutdown", "error", err)
	}
}
