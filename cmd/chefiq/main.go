// ChefIQ is a local recipe box, guided cooking assistant, and demo
// publisher for the iQ Mini Oven and iQ Cooker.
//
// Usage:
//
//	chefiq [command]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
