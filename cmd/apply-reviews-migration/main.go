package main

import (
	"context"
	"os"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/scripts"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	l := logging.NewTo(os.Stderr, cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), l)

	if err := cfg.RequireDB(); err != nil {
		l.Error("configuration", "error", err)
		return scripts.ExitFailure
	}

	gdb, err := db.Open(ctx, cfg.DB)
	if err != nil {
		l.Error("open database", "error", err)
		return scripts.ExitFailure
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			l.Warn("close database", "error", err)
		}
	}()

	path := scripts.MigrationPath(cfg.MigrationsDir, scripts.ReviewsMigrationFile)
	return scripts.ApplyReviewsMigration(ctx, gdb, path, l, os.Stdout)
}
