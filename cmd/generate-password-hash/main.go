package main

import (
	"os"

	"github.com/Skotchmaster/storefront/internal/scripts"
)

func main() {
	os.Exit(scripts.GeneratePasswordHash(os.Args[1:], os.Stdout, os.Stderr))
}
