package driven

import "context"

// CommandRunner executes an external command and returns its combined
// stdout. Implementations wrap os/exec; tests substitute doubles.
type CommandRunner interface {
	// Run executes name with args and returns stdout. A non-zero exit
	// status is returned as an error carrying the stderr text.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
