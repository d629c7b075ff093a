package draftmd

import (
	"log"
	"os"
)

// Logger is the package-wide logger. The core conversion never logs;
// outer layers (the CLI, callers embedding the converter) use it for
// diagnostics.
var Logger = log.New(os.Stderr, "[draftmd] ", log.LstdFlags)

// SetLogger replaces the package logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
