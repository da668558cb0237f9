package main

import (
	"context"
	"os"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/scripts"
	"github.com/Skotchmaster/storefront/internal/seed"
)

func main() {
	os.Exit(run())
}

func run() int {
	req, err := scripts.ParsePurchaseArgs(os.Args[1:])
	if err != nil {
		return scripts.PrintSeedUsage(os.Stderr, err)
	}

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

	s := &seed.Seeder{DB: gdb, Topic: cfg.OrderEventsTopic}
	if len(cfg.KafkaBrokers) > 0 {
		prod, err := events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			l.Warn("kafka disabled", "error", err)
		} else {
			s.Events = prod
			defer func() {
				if err := prod.Close(); err != nil {
					l.Warn("kafka close", "error", err)
				}
			}()
		}
	}

	return scripts.SeedPurchaseForReview(ctx, s, req, l, os.Stdout)
}
