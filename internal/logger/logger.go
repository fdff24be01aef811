// Package logger provides verbose logging for the perundang CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// and per-stage pipeline events are printed to stderr so users can
// follow a conversion as it runs.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message. Warnings are not gated on verbose
// mode: a skipped OCR pass or a failed catalog write should be visible
// on a normal run.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}

// Step emits one pipeline-stage event as a JSON line if verbose mode
// is enabled. The stage name is always present under "step"; fields
// carry stage-specific counters.
func Step(step string, fields map[string]any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	event := map[string]any{"step": step}
	for k, v := range fields {
		event[k] = v
	}
	line, err := json.Marshal(event)
	if err != nil {
		fmt.Fprintf(output, "[WARN] encoding step event: %v\n", err)
		return
	}
	fmt.Fprintf(output, "%s\n", line)
}
