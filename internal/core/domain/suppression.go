package domain

import "regexp"

// SuppressionConfig controls the repeated-line suppressor.
// Immutable for the duration of one run.
type SuppressionConfig struct {
	// ThresholdRatio is the fraction of pages a normalised line must
	// appear on before it becomes a suppression candidate, in (0, 1].
	ThresholdRatio float64

	// KeepPattern, when non-nil, vetoes suppression of any line it
	// matches. It protects caller-flagged content.
	KeepPattern *regexp.Regexp
}

// SuppressionStats aggregates what the suppressor removed.
type SuppressionStats struct {
	// RemovedHeader counts lines removed by letterhead rules or by
	// frequency candidates anchored to the top of pages.
	RemovedHeader int `json:"removed_header"`

	// RemovedFooter counts lines removed by page-number rules or by
	// frequency candidates anchored to the bottom of pages.
	RemovedFooter int `json:"removed_footer"`

	// Overrun counts lines that matched a removal rule but were kept
	// because the per-page runaway guard had already fired.
	Overrun int `json:"suppressor_overrun"`
}

// SuppressionResult is the suppressor's output for one document.
type SuppressionResult struct {
	// Pages is the page sequence with suppressed lines removed.
	Pages Pages

	// Stats aggregates removal counts across all pages.
	Stats SuppressionStats

	// SampleRemoved holds up to five removed line texts for audit.
	SampleRemoved []string

	// Candidates is the set of normalised lines the frequency heuristic
	// selected, exposed for preview and debugging.
	Candidates []string
}
