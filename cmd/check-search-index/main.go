package main

import (
	"context"
	"flag"
	"os"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/scripts"
)

func main() {
	cfg := config.Load()

	index := flag.String("index", cfg.ES.Index, "index to count")
	flag.Parse()
	cfg.ES.Index = *index

	l := logging.NewTo(os.Stderr, cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), l)

	os.Exit(scripts.CheckSearchIndex(ctx, cfg.ES, nil, l, os.Stdout))
}
