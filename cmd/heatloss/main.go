// Command heatloss reads a digit grid and prints the minimum heat loss of
// guiding a crucible from the top-left to the bottom-right corner under
// each requested momentum variant.
//
// Usage:
//
//	heatloss [-i path] [-variants standard,ultra] [-v]
//
// Settings fall back to CRUCIBLE_INPUT, CRUCIBLE_VARIANTS and
// CRUCIBLE_LOG_LEVEL, optionally loaded from a .env file.
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "heatloss:", err)
		os.Exit(1)
	}
}

// newLogger builds the driver's logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return l
}
