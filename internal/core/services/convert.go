package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/lexindo/perundang-cli/internal/core/domain"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
	"github.com/lexindo/perundang-cli/internal/emitter"
	"github.com/lexindo/perundang-cli/internal/lawtext"
	"github.com/lexindo/perundang-cli/internal/logger"
)

// Pipeline defaults. The suspect threshold and suppression ratio are
// tuned for Indonesian statute gazettes and not exposed as flags.
const (
	// EngineName identifies the extraction backend in metadata.
	EngineName = "poppler"

	// DefaultOCRLang is the tesseract language tag.
	DefaultOCRLang = "ind"

	// DefaultOCRDPI is the rasterisation resolution.
	DefaultOCRDPI = 300

	// MinOCRDPI is the lowest accepted rasterisation resolution.
	MinOCRDPI = 72

	// DefaultPSM is the tesseract page segmentation mode.
	DefaultPSM = 4

	// DefaultOEM is the tesseract engine mode.
	DefaultOEM = 1

	// SuspectMinChars is the non-whitespace count under which a page is
	// considered an extraction failure.
	SuspectMinChars = 64

	// SuppressionRatio is the page fraction a line must repeat on to
	// become a suppression candidate.
	SuppressionRatio = 0.60
)

// ConvertOptions carries per-run settings.
type ConvertOptions struct {
	// WithOCR enables the OCR fallback for suspect pages.
	WithOCR bool

	// LawMode names the statute type: "auto", "uu", "pp" or "permen".
	// Empty means "auto". Government and ministerial regulations carry
	// a mandatory chapter/article skeleton, which strict mode checks.
	LawMode string

	// Strict fails the run when the law mode requires structure and
	// none was found.
	Strict bool

	// OCRLang, OCRDPI override the OCR defaults when non-zero.
	OCRLang string
	OCRDPI  int

	// KeepPattern vetoes suppression of matching lines.
	KeepPattern *regexp.Regexp

	// Artifacts, when non-nil, receives intermediate stage dumps.
	Artifacts driven.ArtifactSink
}

// ConvertResult reports one converted document.
type ConvertResult struct {
	DocID        string
	MarkdownPath string
	MetaPath     string
	Fingerprint  string
	Metadata     domain.Metadata
}

// ConvertService drives the extract-suppress-OCR-cleanup-promote-emit
// pipeline for one document at a time.
type ConvertService struct {
	extractor driven.TextExtractor
	ocr       *OCRService
	catalog   driven.RunCatalog
}

// NewConvertService creates a ConvertService. ocr may be nil when the
// OCR capability is absent; catalog may be nil to skip run recording.
func NewConvertService(extractor driven.TextExtractor, ocr *OCRService, catalog driven.RunCatalog) *ConvertService {
	return &ConvertService{
		extractor: extractor,
		ocr:       ocr,
		catalog:   catalog,
	}
}

// Convert runs the full pipeline over the document at path and emits
// <docID>.md and <docID>.meta.json under outDir.
func (s *ConvertService) Convert(ctx context.Context, path, docID, outDir string, opts ConvertOptions) (ConvertResult, error) {
	started := time.Now()

	lang := opts.OCRLang
	if lang == "" {
		lang = DefaultOCRLang
	}
	dpi := opts.OCRDPI
	if dpi == 0 {
		dpi = DefaultOCRDPI
	}
	if dpi < MinOCRDPI {
		return ConvertResult{}, fmt.Errorf("ocr dpi %d below minimum %d: %w", dpi, MinOCRDPI, domain.ErrInvalidInput)
	}

	logger.Section("Convert " + docID)

	pages, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return ConvertResult{}, fmt.Errorf("extracting %s: %w", path, err)
	}
	logger.Step("extract", map[string]any{"pages": len(pages)})
	s.dump(opts, "step1_extract.txt", lawtext.JoinPages(pages))

	suspects := lawtext.DetectSuspects(pages, SuspectMinChars)
	logger.Step("detect_suspects", map[string]any{"suspect_pages": suspects})

	ocrMeta := domain.OCRMeta{
		Enabled:  opts.WithOCR,
		RunPages: []int{},
		Language: lang,
		PSM:      DefaultPSM,
		OEM:      DefaultOEM,
		DPI:      dpi,
	}
	switch {
	case opts.WithOCR && len(suspects) > 0:
		outcome := s.runOCR(ctx, path, suspects, lang, dpi, opts)
		if outcome.Skipped {
			ocrMeta.SkippedReason = "tesseract_missing"
			logger.Warn("OCR unavailable, %d suspect pages left as extracted", len(suspects))
		} else {
			ocrMeta.Ran = true
			for _, ov := range outcome.Overrides {
				ocrMeta.RunPages = append(ocrMeta.RunPages, ov.PageIndex)
			}
			pages = lawtext.ApplyOverrides(pages, outcome.Overrides)
		}
		logger.Step("ocr", map[string]any{
			"ran":     ocrMeta.Ran,
			"pages":   ocrMeta.RunPages,
			"failed":  outcome.Failed,
			"skipped": outcome.Skipped,
		})
	case !opts.WithOCR && len(suspects) > 0:
		ocrMeta.SkippedReason = "disabled_by_flag"
	}

	// Raw text snapshots the document before suppression so the leak
	// metric can see the boilerplate the pipeline is meant to remove.
	rawText := lawtext.JoinPages(pages)

	supp := lawtext.SuppressRepeated(pages, domain.SuppressionConfig{
		ThresholdRatio: SuppressionRatio,
		KeepPattern:    opts.KeepPattern,
	})
	logger.Step("suppress", map[string]any{
		"removed_header": supp.Stats.RemovedHeader,
		"removed_footer": supp.Stats.RemovedFooter,
		"overrun":        supp.Stats.Overrun,
	})
	s.dump(opts, "suppressor_preview.txt", strings.Join(supp.Candidates, "\n"))

	merged := lawtext.JoinPages(supp.Pages)
	s.dump(opts, "step2_merge.txt", merged)

	cr := lawtext.Cleanup(merged)
	stats := cr.Stats
	stats.RemovedHeader += supp.Stats.RemovedHeader
	stats.RemovedFooter += supp.Stats.RemovedFooter
	stats.Overrun += supp.Stats.Overrun
	stats.SampleRemoved = mergeSamples(supp.SampleRemoved, cr.Stats.SampleRemoved)
	logger.Step("cleanup", map[string]any{"hyphens_fixed": stats.HyphensFixed})

	pr := lawtext.PromoteHeadings(cr.Text)
	text := pr.Markdown
	found := pr.Found
	logger.Step("promote", map[string]any{"pasal": found.Pasal, "bab": found.Bab})
	s.dump(opts, "step3_md.txt", text)

	if opts.Strict && structureRequired(opts.LawMode) && (found.Pasal == 0 || found.Bab == 0) {
		return ConvertResult{}, fmt.Errorf("%s: no articles or chapters found: %w", docID, domain.ErrStructureNotFound)
	}

	metrics := domain.MetricsMeta{
		Metrics:       lawtext.ComputeMetrics(rawText, text),
		CoveragePages: coveragePages(len(pages), suspects, ocrMeta.RunPages),
	}
	logger.Step("metrics", map[string]any{
		"character_coverage": metrics.CharacterCoverage,
		"leak_rate":          metrics.LeakRate,
		"coverage_pages":     metrics.CoveragePages,
	})

	finished := time.Now()
	meta := domain.Metadata{
		DocID:        docID,
		Engine:       EngineName,
		SuspectPages: suspects,
		OCR:          ocrMeta,
		Found:        found,
		Stats:        stats,
		Metrics:      metrics,
		PageCount:    len(pages),
		Timing:       timing(finished.Sub(started), len(pages)),
		Timestamps: domain.Timestamps{
			StartedMillis:  started.UnixMilli(),
			FinishedMillis: finished.UnixMilli(),
		},
	}

	emitted, err := emitter.Emit(text, meta, outDir)
	if err != nil {
		return ConvertResult{}, err
	}
	meta.Fingerprint = emitted.Fingerprint

	s.record(ctx, emitted, meta)

	return ConvertResult{
		DocID:        docID,
		MarkdownPath: emitted.MarkdownPath,
		MetaPath:     emitted.MetaPath,
		Fingerprint:  emitted.Fingerprint,
		Metadata:     meta,
	}, nil
}

// runOCR delegates to the OCR service, writing a per-page summary
// artifact afterwards.
func (s *ConvertService) runOCR(ctx context.Context, path string, suspects []int, lang string, dpi int, opts ConvertOptions) domain.OCROutcome {
	if s.ocr == nil {
		return domain.OCROutcome{Skipped: true, Failed: append([]int(nil), suspects...)}
	}

	outcome := s.ocr.Run(ctx, domain.OCRRequest{
		Path:        path,
		PageIndices: suspects,
		Language:    lang,
		DPI:         dpi,
		PSM:         DefaultPSM,
		OEM:         DefaultOEM,
	})

	if opts.Artifacts != nil && !outcome.Skipped {
		var b strings.Builder
		for _, ov := range outcome.Overrides {
			fmt.Fprintf(&b, "page %d: ok (%d chars)\n", ov.PageIndex+1, len(ov.Text))
		}
		for _, pe := range outcome.Errors {
			fmt.Fprintf(&b, "page %d: failed: %s\n", pe.PageIndex+1, pe.Reason)
		}
		s.dump(opts, "ocr/ocr_summary.txt", b.String())
	}
	return outcome
}

// record stores the run in the catalog. Catalog failures are logged
// and swallowed: the emitted files are the product, the catalog is an
// index over them.
func (s *ConvertService) record(ctx context.Context, emitted emitter.Result, meta domain.Metadata) {
	if s.catalog == nil {
		return
	}
	err := s.catalog.Save(ctx, driven.RunRecord{
		DocID:             meta.DocID,
		Fingerprint:       meta.Fingerprint,
		MarkdownPath:      emitted.MarkdownPath,
		MetaPath:          emitted.MetaPath,
		PageCount:         meta.PageCount,
		CharacterCoverage: meta.Metrics.CharacterCoverage,
		LeakRate:          meta.Metrics.LeakRate,
		ConvertedAt:       time.UnixMilli(meta.Timestamps.FinishedMillis).UTC(),
	})
	if err != nil {
		logger.Warn("recording run for %s: %v", meta.DocID, err)
	}
}

// dump writes one stage artifact, logging failures and continuing.
func (s *ConvertService) dump(opts ConvertOptions, relPath, content string) {
	if opts.Artifacts == nil {
		return
	}
	if err := opts.Artifacts.Write(relPath, []byte(content)); err != nil {
		logger.Warn("writing artifact %s: %v", relPath, err)
	}
}

// structureRequired reports whether the law mode mandates a
// chapter/article skeleton. Laws (uu) occasionally consist of a single
// unstructured article, so only government and ministerial regulations
// are checked.
func structureRequired(lawMode string) bool {
	switch strings.ToLower(lawMode) {
	case "pp", "permen":
		return true
	default:
		return false
	}
}

// mergeSamples keeps the suppressor's removed-line samples first and
// tops up with cleanup's, capped at five.
func mergeSamples(first, second []string) []string {
	out := append([]string(nil), first...)
	for _, s := range second {
		if len(out) >= 5 {
			break
		}
		out = append(out, s)
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// coveragePages is 1 minus the fraction of suspect pages OCR could not
// recover. A document with no pages counts as fully covered.
func coveragePages(pageCount int, suspects, ocrRun []int) float64 {
	if pageCount == 0 {
		return 1
	}
	unrecovered := len(suspects) - len(ocrRun)
	if unrecovered < 0 {
		unrecovered = 0
	}
	return 1 - float64(unrecovered)/float64(pageCount)
}

// timing spreads the run's wall-clock time evenly over pages. Per-page
// instrumentation is not worth threading through the pipeline; the
// p95 figure over this proxy still flags pathologically slow runs.
func timing(elapsed time.Duration, pageCount int) domain.Timing {
	if pageCount == 0 {
		return domain.Timing{PerPageMillis: []int64{}}
	}
	per := elapsed.Milliseconds() / int64(pageCount)
	perPage := make([]int64, pageCount)
	for i := range perPage {
		perPage[i] = per
	}
	return domain.Timing{
		PerPageMillis: perPage,
		P95Millis:     p95(perPage),
	}
}

// p95 returns the 95th percentile of the sample.
func p95(samples []int64) int64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]int64(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := (len(sorted)*95 + 99) / 100
	if idx > 0 {
		idx--
	}
	return sorted[idx]
}
