package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/logging"
)

// TxError carries the error that aborted a transaction together with the
// outcome of the rollback that followed. Only Err is reported and unwrapped.
type TxError struct {
	Err         error
	RollbackErr error
}

func (e *TxError) Error() string { return e.Err.Error() }

func (e *TxError) Unwrap() error { return e.Err }

// InTx runs fn inside an explicit transaction on one pooled connection.
// fn's error triggers a rollback; a failing rollback is logged and kept on the
// returned *TxError but never replaces fn's error.
func InTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	l := logging.FromContext(ctx)

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin tx: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(l, tx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		return &TxError{Err: err, RollbackErr: rollback(l, tx)}
	}

	// database/sql finishes the tx on a failed commit; there is nothing left to roll back.
	if err := tx.Commit().Error; err != nil {
		return &TxError{Err: fmt.Errorf("commit tx: %w", err)}
	}
	return nil
}

func rollback(l *slog.Logger, tx *gorm.DB) error {
	err := tx.Rollback().Error
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		l.Error("rollback failed", "error", err)
		return err
	}
	return nil
}
