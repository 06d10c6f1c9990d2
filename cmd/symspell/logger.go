package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI's structured logger. The core symspell package
// never logs; only the CLI does.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "symspell",
	})
}
