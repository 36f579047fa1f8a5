package main

import (
	"fmt"
	"os"

	"github.com/mkadrlik/docsmith/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, redact.String(err.Error()))
		os.Exit(1)
	}
}
