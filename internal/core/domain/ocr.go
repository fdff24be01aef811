package domain

// OCROverride is recognised text for a single page. Overrides are
// produced only for pages whose OCR attempt yielded non-empty text.
type OCROverride struct {
	// PageIndex is the zero-based page the text replaces.
	PageIndex int `json:"page_index"`

	// Text is the recognised page text.
	Text string `json:"text"`
}

// OCRPageError records why one page failed all OCR attempts.
type OCRPageError struct {
	// PageIndex is the zero-based page that failed.
	PageIndex int `json:"page_index"`

	// Reason concatenates the reason codes of every attempt, separated
	// by ";".
	Reason string `json:"reason"`
}

// OCROutcome reports an OCR pass over a set of requested pages.
//
// Invariant: every requested index appears exactly once across
// Overrides and Failed — unless Skipped is true, in which case Failed
// equals the requested set and Overrides is empty.
type OCROutcome struct {
	// Overrides holds recognised text per successfully OCR-ed page.
	Overrides []OCROverride

	// Failed lists pages that exhausted all attempts, in request order.
	Failed []int

	// Skipped is true iff the OCR capability was entirely unavailable
	// and no attempt was made. Callers report this as "OCR unavailable"
	// rather than "OCR tried and failed".
	Skipped bool

	// Errors carries per-page failure diagnostics.
	Errors []OCRPageError
}

// OCRRequest describes one OCR pass.
type OCRRequest struct {
	// Path is the document to rasterise pages from.
	Path string

	// PageIndices are the zero-based pages to OCR.
	PageIndices []int

	// Language is the tesseract language tag (e.g. "ind", "ind+eng").
	Language string

	// DPI is the rasterisation resolution.
	DPI int

	// PSM is the tesseract page segmentation mode.
	PSM int

	// OEM is the tesseract engine mode.
	OEM int
}
