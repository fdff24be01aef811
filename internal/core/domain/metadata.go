package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// OCRMeta describes the OCR pass in the emitted metadata.
type OCRMeta struct {
	Enabled       bool   `json:"enabled"`
	Ran           bool   `json:"ran"`
	SkippedReason string `json:"skipped_reason,omitempty"`
	RunPages      []int  `json:"ocr_run_pages"`
	Language      string `json:"lang"`
	PSM           int    `json:"psm"`
	OEM           int    `json:"oem"`
	DPI           int    `json:"dpi"`
}

// MetricsMeta extends the quality metrics with the page-level OCR
// coverage figure.
type MetricsMeta struct {
	Metrics

	// CoveragePages is 1 minus the fraction of suspect pages that OCR
	// could not recover.
	CoveragePages float64 `json:"coverage_pages"`
}

// Timing captures wall-clock figures for one run. Volatile: excluded
// from the fingerprint.
type Timing struct {
	PerPageMillis []int64 `json:"timing_ms_per_page"`
	P95Millis     int64   `json:"p95_latency_ms_per_page"`
}

// Timestamps captures run start/finish. Volatile: excluded from the
// fingerprint.
type Timestamps struct {
	StartedMillis  int64 `json:"started_ms"`
	FinishedMillis int64 `json:"finished_ms"`
}

// Metadata is the structured sidecar emitted next to the Markdown.
// Field order is fixed; JSON marshalling of this struct is
// deterministic, which the fingerprint relies on.
type Metadata struct {
	DocID        string           `json:"doc_id"`
	Engine       string           `json:"engine"`
	SuspectPages []int            `json:"suspect_pages"`
	OCR          OCRMeta          `json:"ocr"`
	Found        StructuralCounts `json:"found"`
	Stats        CleanupStats     `json:"stats"`
	Metrics      MetricsMeta      `json:"metrics"`
	PageCount    int              `json:"page_count"`
	Timing       Timing           `json:"timing"`
	Timestamps   Timestamps       `json:"timestamps"`
	Fingerprint  string           `json:"meta_fingerprint,omitempty"`
}

// ComputeFingerprint returns the sha256 hex digest of the metadata
// serialised with its volatile fields (timing, timestamps) and any
// previous fingerprint blanked. Two runs over unchanged input produce
// the same digest even though their wall-clock fields differ.
func (m Metadata) ComputeFingerprint() (string, error) {
	stable := m
	stable.Timing = Timing{}
	stable.Timestamps = Timestamps{}
	stable.Fingerprint = ""

	raw, err := json.Marshal(stable)
	if err != nil {
		return "", fmt.Errorf("marshalling metadata: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
