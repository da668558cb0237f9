package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/httpserver"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/uploads"
)

func main() {
	cfg := config.Load()
	l := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	files, err := uploads.NewFileHTTP(cfg.UploadDir)
	if err != nil {
		l.Error("open upload dir", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}
	defer files.Close()

	e := httpserver.New(&httpserver.Deps{Files: files, Logger: l})

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		l.Info("listening", "addr", cfg.ServerAddr, "upload_dir", cfg.UploadDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error("server shutdown error", "error", err)
	}
	l.Info("shutdown complete")
}
