// Package main is the entry point for the roster application.
// It keeps an in-memory roster of employees grouped by department and
// edits it through an interactive command loop on stdin/stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
