package migrate

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

type Policy int

const (
	// Strict stops at the first failing statement.
	Strict Policy = iota
	// Tolerant logs a failing statement and moves on to the next one.
	Tolerant
)

func (p Policy) String() string {
	if p == Tolerant {
		return "tolerant"
	}
	return "strict"
}

// Executor runs one statement as its own round trip.
type Executor interface {
	Exec(ctx context.Context, stmt string) error
}

type GormExecutor struct {
	DB *gorm.DB
}

func (e *GormExecutor) Exec(ctx context.Context, stmt string) error {
	return e.DB.WithContext(ctx).Exec(stmt).Error
}

type StatementError struct {
	Index     int
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d: %v", e.Index+1, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

type Result struct {
	Total    int
	Executed int
	Failed   []StatementError
}

func (r Result) OK() bool { return len(r.Failed) == 0 }

type Runner struct {
	Exec   Executor
	Policy Policy
	Log    *slog.Logger
}

func NewRunner(db *gorm.DB, policy Policy, l *slog.Logger) *Runner {
	return &Runner{Exec: &GormExecutor{DB: db}, Policy: policy, Log: l}
}

// Run executes statements sequentially in the given order without a wrapping
// transaction. Under Strict the first failure is returned as *StatementError
// and later statements are not attempted. Under Tolerant the error is always
// nil and failures are listed in the result.
func (r *Runner) Run(ctx context.Context, statements []string) (Result, error) {
	l := r.Log
	if l == nil {
		l = slog.Default()
	}
	l = l.With("policy", r.Policy.String())

	res := Result{Total: len(statements)}
	for i, stmt := range statements {
		l.Info("executing statement", "index", i+1, "total", res.Total)

		res.Executed++
		if err := r.Exec.Exec(ctx, stmt); err != nil {
			se := StatementError{Index: i, Statement: stmt, Err: err}
			res.Failed = append(res.Failed, se)

			if r.Policy == Strict {
				l.Error("statement failed", "index", i+1, "error", err)
				return res, &se
			}
			l.Warn("statement failed, continuing", "index", i+1, "error", err)
		}
	}

	l.Info("migration finished", "executed", res.Executed, "failed", len(res.Failed))
	return res, nil
}

// RunFile reads, splits and runs the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) (Result, error) {
	script, err := ReadScript(path)
	if err != nil {
		return Result{}, err
	}
	return r.Run(ctx, SplitStatements(script))
}
