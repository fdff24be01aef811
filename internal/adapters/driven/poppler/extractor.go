// Package poppler extracts per-page text from PDF documents using the
// poppler-utils command-line tools (pdfinfo, pdftotext).
package poppler

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lexindo/perundang-cli/internal/adapters/driven/shell"
	"github.com/lexindo/perundang-cli/internal/core/domain"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
)

// lookPath is swappable for tests.
var lookPath = exec.LookPath

// Extractor extracts page text by shelling out to poppler-utils.
type Extractor struct {
	runner driven.CommandRunner
}

var _ driven.TextExtractor = (*Extractor)(nil)

// New creates an Extractor using the real command runner.
func New() *Extractor {
	return NewWithRunner(shell.New())
}

// NewWithRunner creates an Extractor with a custom command runner,
// used by tests to mock the poppler tools.
func NewWithRunner(runner driven.CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// CheckAvailable verifies pdftotext and pdfinfo are in PATH.
func (e *Extractor) CheckAvailable() error {
	for _, tool := range []string{"pdftotext", "pdfinfo"} {
		if _, err := lookPath(tool); err != nil {
			return fmt.Errorf("%s not found in PATH: %w", tool, domain.ErrCapabilityUnavailable)
		}
	}
	return nil
}

// InstallInstructions returns help text for installing poppler-utils.
func InstallInstructions() string {
	return `pdftotext and pdfinfo are required (part of poppler-utils):
  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils`
}

// Extract returns the text of every page in order. Layout mode
// preserves column positioning so the suppressor can see headers and
// footers on their own lines.
//
// Page boundaries come from pdfinfo's page count with one pdftotext
// invocation per page. When pdfinfo cannot report a count the whole
// document is extracted in one call and split on form feeds, which
// pdftotext inserts between pages.
func (e *Extractor) Extract(ctx context.Context, path string) (domain.Pages, error) {
	count, err := e.pageCount(ctx, path)
	if err != nil {
		return e.extractWhole(ctx, path)
	}

	pages := make(domain.Pages, 0, count)
	for p := 1; p <= count; p++ {
		out, err := e.runner.Run(ctx, "pdftotext",
			"-layout", "-nopgbrk", "-q",
			"-f", strconv.Itoa(p), "-l", strconv.Itoa(p), path, "-")
		if err != nil {
			return nil, classifyExtractErr(err)
		}
		pages = append(pages, strings.TrimSuffix(string(out), "\f"))
	}
	return pages, nil
}

// pageCount parses "Pages: N" from pdfinfo output.
func (e *Extractor) pageCount(ctx context.Context, path string) (int, error) {
	out, err := e.runner.Run(ctx, "pdfinfo", path)
	if err != nil {
		return 0, classifyExtractErr(err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
		if err != nil {
			return 0, fmt.Errorf("parsing pdfinfo page count: %w", err)
		}
		if count < 1 {
			return 0, fmt.Errorf("pdfinfo reported %d pages: %w", count, domain.ErrExtractionFailed)
		}
		return count, nil
	}
	return 0, fmt.Errorf("no page count in pdfinfo output: %w", domain.ErrExtractionFailed)
}

func (e *Extractor) extractWhole(ctx context.Context, path string) (domain.Pages, error) {
	out, err := e.runner.Run(ctx, "pdftotext", "-layout", path, "-")
	if err != nil {
		return nil, classifyExtractErr(err)
	}
	pages := domain.Pages(strings.Split(string(out), "\f"))
	// pdftotext ends the stream with a form feed, leaving an empty
	// trailing page after the split.
	for len(pages) > 0 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages, nil
}

// classifyExtractErr maps tool failures onto domain errors. Poppler
// reports password-protected files on stderr, which the runner folds
// into the error text.
func classifyExtractErr(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "encrypt") || strings.Contains(msg, "password") {
		return fmt.Errorf("%w: %v", domain.ErrDocumentEncrypted, err)
	}
	if strings.Contains(msg, "no such file") || strings.Contains(msg, "couldn't open") ||
		strings.Contains(msg, "may not be a pdf") {
		return fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
}
