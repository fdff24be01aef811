// Package tesseract rasterises PDF pages with pdftoppm and recognises
// them with the tesseract OCR engine.
package tesseract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lexindo/perundang-cli/internal/adapters/driven/shell"
	"github.com/lexindo/perundang-cli/internal/core/domain"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
)

// lookPath is swappable for tests.
var lookPath = exec.LookPath

// Renderer rasterises document pages through pdftoppm.
type Renderer struct {
	runner driven.CommandRunner
}

var _ driven.PageRenderer = (*Renderer)(nil)

// NewRenderer creates a Renderer using the real command runner.
func NewRenderer() *Renderer {
	return NewRendererWithRunner(shell.New())
}

// NewRendererWithRunner creates a Renderer with a custom command
// runner, used by tests to mock pdftoppm.
func NewRendererWithRunner(runner driven.CommandRunner) *Renderer {
	return &Renderer{runner: runner}
}

// CheckAvailable verifies pdftoppm is in PATH.
func (r *Renderer) CheckAvailable() error {
	if _, err := lookPath("pdftoppm"); err != nil {
		return fmt.Errorf("pdftoppm not found in PATH: %w", domain.ErrCapabilityUnavailable)
	}
	return nil
}

// RenderPage rasterises the 1-based page to dir/page-<n>.png. The
// image is verified to exist and be non-empty before the path is
// returned; the failure reason codes feed the OCR error report.
func (r *Renderer) RenderPage(ctx context.Context, path string, pageNo, dpi int, dir string) (string, error) {
	prefix := filepath.Join(dir, fmt.Sprintf("page-%d", pageNo))
	_, err := r.runner.Run(ctx, "pdftoppm",
		"-r", strconv.Itoa(dpi),
		"-f", strconv.Itoa(pageNo),
		"-l", strconv.Itoa(pageNo),
		"-png", "-singlefile", path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm_failed: %v", err)
	}

	img := prefix + ".png"
	info, err := os.Stat(img)
	if err != nil {
		return "", errors.New("image_missing")
	}
	if info.Size() == 0 {
		return "", errors.New("image_zero_size")
	}
	return img, nil
}

// Recogniser runs the tesseract binary over page images.
type Recogniser struct {
	runner driven.CommandRunner
}

var _ driven.Recogniser = (*Recogniser)(nil)

// NewRecogniser creates a Recogniser using the real command runner.
func NewRecogniser() *Recogniser {
	return NewRecogniserWithRunner(shell.New())
}

// NewRecogniserWithRunner creates a Recogniser with a custom command
// runner, used by tests to mock tesseract.
func NewRecogniserWithRunner(runner driven.CommandRunner) *Recogniser {
	return &Recogniser{runner: runner}
}

// CheckAvailable verifies tesseract is in PATH.
func (r *Recogniser) CheckAvailable() error {
	if _, err := lookPath("tesseract"); err != nil {
		return fmt.Errorf("tesseract not found in PATH: %w", domain.ErrCapabilityUnavailable)
	}
	return nil
}

// InstallInstructions returns help text for installing the OCR tools.
func InstallInstructions() string {
	return `pdftoppm and tesseract are required for OCR fallback:
  macOS:         brew install poppler tesseract tesseract-lang
  Debian/Ubuntu: sudo apt install poppler-utils tesseract-ocr tesseract-ocr-ind
  Fedora:        sudo dnf install poppler-utils tesseract tesseract-langpack-ind`
}

// Recognise OCRs the image and returns the recognised text. Empty
// output, a non-zero exit and a spawn failure each map to a distinct
// reason code in the returned error.
func (r *Recogniser) Recognise(ctx context.Context, imagePath, lang string, psm, oem int) (string, error) {
	out, err := r.runner.Run(ctx, "tesseract",
		imagePath, "stdout",
		"-l", lang,
		"--psm", strconv.Itoa(psm),
		"--oem", strconv.Itoa(oem))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("tesseract_exit_%d", exitErr.ExitCode())
		}
		return "", fmt.Errorf("tesseract_spawn_error: %v", err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", errors.New("empty_text")
	}
	return text, nil
}
