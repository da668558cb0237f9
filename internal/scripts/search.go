package scripts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/search"
)

// CheckSearchIndex is a diagnostic: it connects to Elasticsearch and prints
// how many documents the index holds.
func CheckSearchIndex(ctx context.Context, cfg config.ESConfig, transport http.RoundTripper, l *slog.Logger, stdout io.Writer) int {
	l = l.With("script", "check-search-index", "index", cfg.Index)

	es, err := search.NewClient(ctx, cfg, transport)
	if err != nil {
		l.Error("connect elasticsearch", "error", err)
		return ExitFailure
	}

	n, err := search.CountDocuments(ctx, es, cfg.Index)
	if err != nil {
		l.Error("count documents", "error", err)
		return ExitFailure
	}

	fmt.Fprintf(stdout, "index %s: %d documents\n", cfg.Index, n)
	return ExitOK
}
