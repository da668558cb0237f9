package scripts

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Skotchmaster/storefront/internal/seed"
)

const seedUsage = "usage: seed-purchase-for-review --email=<email> --productId=<id> [--qty=<n>]"

// ParsePurchaseArgs reads --email, --productId and --qty. Missing required
// flags yield ErrUsage.
func ParsePurchaseArgs(args []string) (seed.PurchaseRequest, error) {
	fs := flag.NewFlagSet("seed-purchase-for-review", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var req seed.PurchaseRequest
	var productID uint
	fs.StringVar(&req.Email, "email", "", "buyer email")
	fs.UintVar(&productID, "productId", 0, "product id")
	fs.IntVar(&req.Quantity, "qty", 1, "quantity")

	if err := fs.Parse(args); err != nil {
		return req, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	req.ProductID = productID
	req.Email = strings.TrimSpace(req.Email)

	if req.Email == "" || req.ProductID == 0 {
		return req, fmt.Errorf("%w: --email and --productId are required", ErrUsage)
	}
	if req.Quantity < 1 {
		return req, fmt.Errorf("%w: --qty must be a positive integer", ErrUsage)
	}
	return req, nil
}

// PrintSeedUsage writes err and the usage line to w and returns ExitUsage.
func PrintSeedUsage(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	fmt.Fprintln(w, seedUsage)
	return ExitUsage
}

// SeedPurchaseForReview creates one completed order and prints its id.
func SeedPurchaseForReview(ctx context.Context, s *seed.Seeder, req seed.PurchaseRequest, l *slog.Logger, stdout io.Writer) int {
	l = l.With("script", "seed-purchase-for-review")

	order, err := s.SeedPurchase(ctx, req)
	if err != nil {
		if errors.Is(err, seed.ErrProductNotFound) {
			l.Error("Product not found", "product_id", req.ProductID)
		} else {
			l.Error("seed purchase failed", "error", err)
		}
		return ExitFailure
	}

	fmt.Fprintf(stdout, "created order %d\n", order.ID)
	return ExitOK
}
