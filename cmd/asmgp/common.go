// ABOUTME: Shared entry point plumbing: debug logging for the run/trace/watch subcommands
// ABOUTME: One debug logger shared across subcommands, off until --debug enables it

package main

import (
	"fmt"
	"log"
	"os"
)

// debugLog writes to a file for debugging; nil (and silent) unless --debug
// is passed to a subcommand.
var debugLog *log.Logger

// setupDebugLog initializes debug logging to the given file.
func setupDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create debug log: %w", err)
	}
	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}
	return nil
}

// debugf logs to the debug file if enabled; otherwise it's a silent no-op.
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}
