package domain

// Metrics scores the quality of one converted document.
type Metrics struct {
	// CharacterCoverage is non-whitespace chars in the Markdown over
	// non-whitespace chars in the pre-cleanup text, clamped to [0, 1].
	// Zero when the denominator is zero.
	CharacterCoverage float64 `json:"character_coverage"`

	// LeakRate is the fraction of boilerplate lines still present in
	// the Markdown relative to all boilerplate ever observed, in [0, 1].
	// Zero when nothing was observed.
	LeakRate float64 `json:"leak_rate"`

	// SplitViolations counts residual evidence of failed list or
	// parenthetical joins.
	SplitViolations int `json:"split_violations"`
}
