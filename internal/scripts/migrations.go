package scripts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"text/tabwriter"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/migrate"
)

const (
	ReviewsMigrationFile = "001_product_reviews.sql"
	InStockMigrationFile = "002_products_in_stock.sql"

	InStockTable    = "products"
	InStockColumn   = "in_stock"
	InStockBackfill = "UPDATE products SET in_stock = (count > 0) WHERE in_stock IS NULL"

	sampleSize = 5
)

func MigrationPath(dir, file string) string {
	return filepath.Join(dir, file)
}

// ApplyReviewsMigration runs the reviews script strictly: the first failing
// statement ends the run with ExitFailure. Statements already applied stay.
func ApplyReviewsMigration(ctx context.Context, db *gorm.DB, path string, l *slog.Logger, stdout io.Writer) int {
	l = l.With("script", "apply-reviews-migration", "file", path)

	res, err := migrate.NewRunner(db, migrate.Strict, l).RunFile(ctx, path)
	if err != nil {
		l.Error("migration failed", "executed", res.Executed, "total", res.Total, "error", err)
		return ExitFailure
	}

	fmt.Fprintf(stdout, "applied %d statements from %s\n", res.Executed, filepath.Base(path))
	return ExitOK
}

type stockRow struct {
	ID      uint
	Name    string
	Count   uint
	InStock *bool
}

// MigrateAndCheckInStock runs the in_stock script tolerantly, then verifies
// the column exists (ExitColumnMissing when it does not), prints a sample and
// backfills rows the script left NULL. Statement failures alone never change
// the exit code.
func MigrateAndCheckInStock(ctx context.Context, db *gorm.DB, path string, l *slog.Logger, stdout io.Writer) int {
	l = l.With("script", "migrate-and-check-in-stock", "file", path)

	res, err := migrate.NewRunner(db, migrate.Tolerant, l).RunFile(ctx, path)
	if err != nil {
		l.Error("read migration", "error", err)
		return ExitFailure
	}
	if !res.OK() {
		l.Warn("some statements failed", "failed", len(res.Failed), "total", res.Total)
	}

	ok, err := migrate.HasColumn(ctx, db, InStockTable, InStockColumn)
	if err != nil {
		l.Error("verify column", "error", err)
		return ExitFailure
	}
	if !ok {
		fmt.Fprintf(stdout, "column %s.%s is missing\n", InStockTable, InStockColumn)
		return ExitColumnMissing
	}
	fmt.Fprintf(stdout, "column %s.%s present\n", InStockTable, InStockColumn)

	var rows []stockRow
	if err := db.WithContext(ctx).
		Raw("SELECT id, name, count, in_stock FROM products ORDER BY id LIMIT ?", sampleSize).
		Scan(&rows).Error; err != nil {
		l.Error("sample rows", "error", err)
		return ExitFailure
	}
	printStockSample(stdout, rows)

	n, err := migrate.Backfill(ctx, db, InStockBackfill)
	if err != nil {
		l.Error("backfill failed", "error", err)
		return ExitFailure
	}
	fmt.Fprintf(stdout, "backfilled %d rows\n", n)
	return ExitOK
}

func printStockSample(w io.Writer, rows []stockRow) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOUNT\tIN_STOCK")
	for _, r := range rows {
		inStock := "NULL"
		if r.InStock != nil {
			inStock = fmt.Sprint(*r.InStock)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", r.ID, r.Name, r.Count, inStock)
	}
	_ = tw.Flush()
}
