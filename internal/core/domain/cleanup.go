package domain

// CleanupStats aggregates what the cleanup engine changed. The
// suppressor's removal counts are merged into these before the stats
// are published in metadata.
type CleanupStats struct {
	// RemovedHeader counts letterhead lines removed.
	RemovedHeader int `json:"removed_header"`

	// RemovedFooter counts page-number and label lines removed.
	RemovedFooter int `json:"removed_footer"`

	// HyphensFixed counts words rejoined across a hyphenated line break.
	HyphensFixed int `json:"hyphens_fixed"`

	// SampleRemoved holds up to five removed line texts, carried over
	// from the suppressor.
	SampleRemoved []string `json:"removed_lines_sample"`

	// Overrun carries the suppressor's runaway-guard counter.
	Overrun int `json:"suppressor_overrun"`
}

// CleanupResult is the cleanup engine's output.
type CleanupResult struct {
	// Text is the cleaned document text.
	Text string

	// Stats aggregates the cleanup changes.
	Stats CleanupStats
}
