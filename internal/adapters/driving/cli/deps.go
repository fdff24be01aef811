package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexindo/perundang-cli/internal/adapters/driven/poppler"
	"github.com/lexindo/perundang-cli/internal/adapters/driven/tesseract"
	"github.com/lexindo/perundang-cli/internal/core/domain"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check that the external tools are installed",
	Long: `Probes PATH for the external binaries the pipeline shells out to.
pdftotext and pdftoppm are mandatory; tesseract only gates the OCR
fallback for suspect pages.`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, _ []string) error {
	caps := probeTools()

	status := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "missing"
	}

	cmd.Println("External tools:")
	cmd.Printf("  pdftotext  [%s]  per-page text extraction\n", status(caps.PDFToText))
	cmd.Printf("  pdftoppm   [%s]  page rasterisation\n", status(caps.PDFToPPM))
	cmd.Printf("  tesseract  [%s]  OCR fallback (optional)\n", status(caps.Tesseract))

	if !caps.PDFToText || !caps.PDFToPPM {
		cmd.PrintErrln()
		cmd.PrintErrln(poppler.InstallInstructions())
	}
	if !caps.Tesseract {
		cmd.PrintErrln()
		cmd.PrintErrln(tesseract.InstallInstructions())
	}

	if !caps.OK() {
		return fmt.Errorf("%s: %w", caps.MissingReason(), domain.ErrCapabilityUnavailable)
	}

	if !caps.OCRReady() {
		cmd.Println("\nOCR fallback unavailable; suspect pages will be kept as extracted.")
	} else {
		cmd.Println("\nAll tools installed.")
	}
	return nil
}
