package domain

// StructuralCounts accumulates the legal structure found while the
// heading promoter scans a document. Counters only ever increase and
// the flags never reset once set.
type StructuralCounts struct {
	// Pasal counts article headings.
	Pasal int `json:"pasal"`

	// Bab counts chapter headings.
	Bab int `json:"bab"`

	// Menimbang is true once a "Menimbang:" section opener was seen.
	Menimbang bool `json:"menimbang"`

	// Mengingat is true once a "Mengingat:" section opener was seen.
	Mengingat bool `json:"mengingat"`

	// Penjelasan is true once the explanatory-memorandum marker was seen.
	Penjelasan bool `json:"penjelasan"`
}

// PromotionResult is the heading promoter's output.
type PromotionResult struct {
	// Markdown is the document with structural lines promoted to
	// Markdown headings.
	Markdown string

	// Found is the accumulated structural census.
	Found StructuralCounts
}
