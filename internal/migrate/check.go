package migrate

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// HasColumn asks the schema catalog whether table.column exists. A missing
// table reports false; only a failed catalog query returns an error.
func HasColumn(ctx context.Context, db *gorm.DB, table, column string) (bool, error) {
	q := "SELECT count(*) FROM information_schema.columns " +
		"WHERE table_schema = CURRENT_SCHEMA() AND table_name = ? AND column_name = ?"
	if db.Dialector.Name() == "sqlite" {
		q = "SELECT count(*) FROM pragma_table_info(?) WHERE name = ?"
	}

	var n int64
	if err := db.WithContext(ctx).Raw(q, table, column).Scan(&n).Error; err != nil {
		return false, fmt.Errorf("check column %s.%s: %w", table, column, err)
	}
	return n > 0, nil
}

// Backfill runs one corrective bulk update and reports the affected rows.
func Backfill(ctx context.Context, db *gorm.DB, stmt string, args ...any) (int64, error) {
	res := db.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		return 0, fmt.Errorf("backfill: %w", res.Error)
	}
	return res.RowsAffected, nil
}
