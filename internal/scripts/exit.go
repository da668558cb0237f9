// Package scripts holds the developer scripts behind cmd/. Each script returns
// its process exit code so main only has to call os.Exit.
package scripts

import "errors"

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2

	// ExitColumnMissing: migrate-and-check-in-stock ran but the column it
	// verifies is still absent.
	ExitColumnMissing = 2
)

var ErrUsage = errors.New("usage")
