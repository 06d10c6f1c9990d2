// Command symspell owns dictionary ingestion, configuration, and logging so
// the core symspell package can stay a silent, dependency-light library.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
