package migrate

import (
	"fmt"
	"os"
	"strings"
)

// Delimiter separates statements in a migration script.
//
// Splitting is purely textual: a ";\n" inside a string literal or a comment
// also ends a statement. Existing scripts depend on exactly this behavior.
const Delimiter = ";\n"

func ReadScript(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read migration %s: %w", path, err)
	}
	return string(b), nil
}

// SplitStatements returns the non-empty statements of script in file order.
func SplitStatements(script string) []string {
	script = strings.ReplaceAll(script, "\r\n", "\n")

	parts := strings.Split(script, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
