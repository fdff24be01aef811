package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lexindo/perundang-cli/internal/core/domain"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
	"github.com/lexindo/perundang-cli/internal/logger"
)

// fallbackPSM is the page segmentation mode of the last OCR attempt.
// Mode 6 assumes one uniform text block, which recovers scans where
// layout analysis under the configured mode finds nothing.
const fallbackPSM = 6

// OCRService recovers text from pages the extractor could not read, by
// rasterising each page and running it through the recogniser.
type OCRService struct {
	renderer   driven.PageRenderer
	recogniser driven.Recogniser
	artifacts  driven.ArtifactSink
}

// NewOCRService creates an OCRService. artifacts may be nil to disable
// page-image side writes.
func NewOCRService(renderer driven.PageRenderer, recogniser driven.Recogniser, artifacts driven.ArtifactSink) *OCRService {
	return &OCRService{
		renderer:   renderer,
		recogniser: recogniser,
		artifacts:  artifacts,
	}
}

// Run OCRs the requested pages. When the rasterisation or recognition
// capability is missing the whole pass is skipped: every requested
// page lands in Failed and Skipped is set, so the caller reports "OCR
// unavailable" instead of a per-page failure.
//
// Each page gets up to three attempts: the configured language and
// mode, the "ind+eng" language mix (unless the configured tag already
// mixes languages), and finally the mix under the uniform-block
// segmentation mode. A page fails only after all attempts, with the
// attempt reasons joined by ";".
func (s *OCRService) Run(ctx context.Context, req domain.OCRRequest) domain.OCROutcome {
	var outcome domain.OCROutcome

	if s.renderer == nil || s.recogniser == nil ||
		s.renderer.CheckAvailable() != nil || s.recogniser.CheckAvailable() != nil {
		outcome.Skipped = true
		outcome.Failed = append(outcome.Failed, req.PageIndices...)
		return outcome
	}

	workDir, err := os.MkdirTemp("", "perundang-ocr-*")
	if err != nil {
		logger.Warn("creating OCR work dir: %v", err)
		outcome.Skipped = true
		outcome.Failed = append(outcome.Failed, req.PageIndices...)
		return outcome
	}
	defer os.RemoveAll(workDir)

	for _, idx := range req.PageIndices {
		pageNo := idx + 1

		img, err := s.renderer.RenderPage(ctx, req.Path, pageNo, req.DPI, workDir)
		if err != nil {
			outcome.Failed = append(outcome.Failed, idx)
			outcome.Errors = append(outcome.Errors, domain.OCRPageError{
				PageIndex: idx,
				Reason:    err.Error(),
			})
			continue
		}
		s.keepImage(img, pageNo)

		text, reason := s.recogniseWithFallback(ctx, img, req.Language, req.PSM, req.OEM)
		if reason != "" {
			outcome.Failed = append(outcome.Failed, idx)
			outcome.Errors = append(outcome.Errors, domain.OCRPageError{
				PageIndex: idx,
				Reason:    reason,
			})
			continue
		}
		outcome.Overrides = append(outcome.Overrides, domain.OCROverride{
			PageIndex: idx,
			Text:      text,
		})
	}

	return outcome
}

// recogniseWithFallback runs the attempt ladder for one page image.
// An empty reason means success.
func (s *OCRService) recogniseWithFallback(ctx context.Context, img, lang string, psm, oem int) (string, string) {
	type attempt struct {
		lang string
		psm  int
	}

	mixLang := lang
	attempts := []attempt{{lang: lang, psm: psm}}
	if !strings.Contains(lang, "+") {
		mixLang = "ind+eng"
		attempts = append(attempts, attempt{lang: mixLang, psm: psm})
	}
	attempts = append(attempts, attempt{lang: mixLang, psm: fallbackPSM})

	var reasons []string
	for _, a := range attempts {
		text, err := s.recogniser.Recognise(ctx, img, a.lang, a.psm, oem)
		if err == nil {
			return text, ""
		}
		reasons = append(reasons, err.Error())
	}
	return "", strings.Join(reasons, ";")
}

// keepImage copies a rendered page image into the artifact sink.
func (s *OCRService) keepImage(img string, pageNo int) {
	if s.artifacts == nil {
		return
	}
	data, err := os.ReadFile(img)
	if err != nil {
		logger.Warn("reading OCR page image: %v", err)
		return
	}
	rel := fmt.Sprintf("ocr/page-%d.png", pageNo)
	if err := s.artifacts.Write(rel, data); err != nil {
		logger.Warn("keeping OCR page image: %v", err)
	}
}
