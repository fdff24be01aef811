package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexindo/perundang-cli/internal/adapters/driven/artifacts"
	"github.com/lexindo/perundang-cli/internal/adapters/driven/config/prd"
	"github.com/lexindo/perundang-cli/internal/adapters/driven/poppler"
	"github.com/lexindo/perundang-cli/internal/core/domain"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
	"github.com/lexindo/perundang-cli/internal/core/services"
	"github.com/lexindo/perundang-cli/internal/logger"
)

// Defaults used when neither flags nor a manifest name them.
const (
	defaultGlob   = "./input/**/*.pdf"
	defaultOutDir = "./output"
)

var (
	convertGlob      string
	convertOut       string
	convertPRD       string
	convertWithOCR   string
	convertOCRLang   string
	convertOCRDPI    int
	convertLawMode   string
	convertStrict    bool
	convertKeepLines string
	convertArtifacts string
	convertPerDocDir string
	convertDumpSteps bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert matching PDFs to Markdown plus metadata",
	Long: `Converts every PDF matched by the input glob. Each document becomes
<doc-id>.md and <doc-id>.meta.json in its output directory; suspect
pages are re-read via OCR when tesseract is available.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertGlob, "glob", "", "Input glob over PDFs (default from prd.yaml, else "+defaultGlob+")")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "Output directory (default from prd.yaml, else "+defaultOutDir+")")
	convertCmd.Flags().StringVar(&convertPRD, "prd", "", "Path to a prd.yaml run manifest")
	convertCmd.Flags().StringVar(&convertWithOCR, "with-ocr", "auto", "OCR fallback for suspect pages: auto, on or off")
	convertCmd.Flags().StringVar(&convertOCRLang, "ocr-lang", services.DefaultOCRLang, "Tesseract language tag")
	convertCmd.Flags().IntVar(&convertOCRDPI, "ocr-dpi", services.DefaultOCRDPI, "Rasterisation resolution for OCR")
	convertCmd.Flags().StringVar(&convertLawMode, "law-mode", "auto", "Statute type: auto, uu, pp or permen")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail when a pp/permen document has no chapter/article structure")
	convertCmd.Flags().StringVar(&convertKeepLines, "keep-lines", "", "Regex vetoing header/footer suppression of matching lines")
	convertCmd.Flags().StringVar(&convertArtifacts, "artifacts", "off", "Write OCR page images and summaries: on or off")
	convertCmd.Flags().StringVar(&convertPerDocDir, "per-doc-dir", "on", "Emit each document into its own subdirectory: on or off")
	convertCmd.Flags().BoolVar(&convertDumpSteps, "dump-steps", false, "Write per-stage text dumps next to the outputs")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	glob, outDir, err := resolveIO()
	if err != nil {
		return err
	}

	caps := probeTools()
	if !caps.OK() {
		cmd.PrintErrln(poppler.InstallInstructions())
		return fmt.Errorf("%s: %w", caps.MissingReason(), domain.ErrCapabilityUnavailable)
	}

	withOCR, err := resolveWithOCR(convertWithOCR, caps)
	if err != nil {
		return err
	}

	var keep *regexp.Regexp
	if convertKeepLines != "" {
		keep, err = regexp.Compile(convertKeepLines)
		if err != nil {
			return fmt.Errorf("invalid --keep-lines pattern: %w: %v", domain.ErrInvalidInput, err)
		}
	}

	perDocDir, err := onOff("per-doc-dir", convertPerDocDir)
	if err != nil {
		return err
	}
	wantArtifacts, err := onOff("artifacts", convertArtifacts)
	if err != nil {
		return err
	}

	files, err := services.EnumeratePDFs(glob)
	if err != nil {
		if errors.Is(err, domain.ErrNoFilesFound) {
			cmd.PrintErrln(services.FolderGuidance)
		}
		return err
	}

	catalog, err := openCatalog()
	if err != nil {
		logger.Warn("run catalog unavailable: %v", err)
		catalog = nil
	}
	if catalog != nil {
		defer catalog.Close()
	}

	ctx := context.Background()
	alloc := domain.NewIDAllocator()
	extractor := newExtractor()

	cmd.Printf("Converting %d document(s) from %s\n", len(files), glob)

	for _, path := range files {
		docID := alloc.Allocate(domain.DocID(stem(path)))

		docOut := outDir
		if perDocDir {
			docOut = filepath.Join(outDir, docID)
		}

		var sink driven.ArtifactSink
		if wantArtifacts || convertDumpSteps {
			sink = artifacts.NewDirSink(filepath.Join(docOut, "artifacts"))
		}

		var previous *driven.RunRecord
		if catalog != nil {
			if previous, err = catalog.Latest(ctx, docID); err != nil {
				logger.Warn("reading previous run for %s: %v", docID, err)
				previous = nil
			}
		}

		svc := services.NewConvertService(extractor,
			services.NewOCRService(newRenderer(), newRecogniser(), sink), catalog)

		res, err := svc.Convert(ctx, path, docID, docOut, services.ConvertOptions{
			WithOCR:     withOCR,
			LawMode:     convertLawMode,
			Strict:      convertStrict,
			OCRLang:     convertOCRLang,
			OCRDPI:      convertOCRDPI,
			KeepPattern: keep,
			Artifacts:   sink,
		})
		if err != nil {
			return fmt.Errorf("converting %s: %w", path, err)
		}

		cmd.Printf("  %s: %d pages -> %s (%s)\n",
			docID, res.Metadata.PageCount, res.MarkdownPath, changeLabel(previous, res.Fingerprint))
	}

	cmd.Printf("Done: %d document(s) converted to %s\n", len(files), outDir)
	return nil
}

// resolveIO settles the input glob and output directory from flags, the
// manifest and the built-in defaults, in that order.
func resolveIO() (glob, outDir string, err error) {
	glob, outDir = convertGlob, convertOut

	if convertPRD != "" {
		cfg, err := prd.Load(convertPRD)
		if err != nil {
			return "", "", err
		}
		if glob == "" {
			glob = cfg.InputGlob()
		}
		if outDir == "" {
			outDir = cfg.OutputDir()
		}
	}

	if glob == "" {
		glob = defaultGlob
	}
	if outDir == "" {
		outDir = defaultOutDir
	}
	return glob, outDir, nil
}

// resolveWithOCR maps the tri-state flag onto a boolean. "auto" enables
// OCR exactly when the tools are installed; "on" keeps it enabled even
// without them, so the metadata records the skip instead of silently
// downgrading.
func resolveWithOCR(value string, caps services.Capabilities) (bool, error) {
	switch strings.ToLower(value) {
	case "auto", "":
		return caps.OCRReady(), nil
	case "on", "true":
		return true, nil
	case "off", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --with-ocr value %q (want auto, on or off): %w", value, domain.ErrInvalidInput)
	}
}

func onOff(flag, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true":
		return true, nil
	case "off", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --%s value %q (want on or off): %w", flag, value, domain.ErrInvalidInput)
	}
}

// stem is the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func changeLabel(previous *driven.RunRecord, fingerprint string) string {
	switch {
	case previous == nil:
		return "new"
	case previous.Fingerprint == fingerprint:
		return "unchanged"
	default:
		return "changed"
	}
}
