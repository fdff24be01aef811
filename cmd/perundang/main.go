// Command perundang converts Indonesian statutory PDFs to Markdown.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lexindo/perundang-cli/internal/adapters/driving/cli"
	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// version is overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps domain errors onto stable process exit codes so batch
// scripts can distinguish missing tools from missing structure.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrCapabilityUnavailable):
		return 2
	case errors.Is(err, domain.ErrInvalidConfig):
		return 3
	case errors.Is(err, domain.ErrStructureNotFound):
		return 5
	case errors.Is(err, domain.ErrWriteFailed):
		return 6
	default:
		return 1
	}
}
