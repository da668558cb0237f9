package scripts

import (
	"fmt"
	"io"

	"github.com/Skotchmaster/storefront/internal/hash"
)

// GeneratePasswordHash prints a bcrypt hash of args[0].
func GeneratePasswordHash(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || args[0] == "" {
		fmt.Fprintln(stderr, "usage: generate-password-hash <password>")
		return ExitFailure
	}

	h, err := hash.HashPassword(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "hash password: %v\n", err)
		return ExitFailure
	}

	fmt.Fprintln(stdout, h)
	return ExitOK
}
