// Package shell runs external binaries through os/exec for adapters
// that wrap command-line tools.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
)

// Runner executes commands with exec.CommandContext. It is the
// production CommandRunner; tests substitute a mock.
type Runner struct{}

var _ driven.CommandRunner = (*Runner)(nil)

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run executes name with args and returns its stdout. On a non-zero
// exit the error includes captured stderr, which tools like pdftotext
// use for diagnostics such as encryption notices.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("running %s: %w (stderr: %s)", name, err, stderr.String())
	}
	return stdout.Bytes(), nil
}
