package services

import "strings"

// Capabilities reports which external tools are installed. The
// extraction tools are mandatory; the OCR pair only gates the OCR
// fallback.
type Capabilities struct {
	PDFToText bool
	PDFToPPM  bool
	Tesseract bool
}

// checker narrows the extractor/renderer/recogniser ports to the one
// method capability probing needs.
type checker interface {
	CheckAvailable() error
}

// ProbeCapabilities checks each tool once. A nil checker marks its
// capability unavailable.
func ProbeCapabilities(extractor, renderer, recogniser checker) Capabilities {
	probe := func(c checker) bool {
		return c != nil && c.CheckAvailable() == nil
	}
	return Capabilities{
		PDFToText: probe(extractor),
		PDFToPPM:  probe(renderer),
		Tesseract: probe(recogniser),
	}
}

// OK reports whether the mandatory tools are present. pdftoppm is
// required even without OCR because page rendering backs the artifact
// dumps; tesseract alone is optional.
func (c Capabilities) OK() bool {
	return c.PDFToText && c.PDFToPPM
}

// OCRReady reports whether the OCR fallback can run.
func (c Capabilities) OCRReady() bool {
	return c.PDFToPPM && c.Tesseract
}

// Missing lists the names of absent tools.
func (c Capabilities) Missing() []string {
	var missing []string
	if !c.PDFToText {
		missing = append(missing, "pdftotext")
	}
	if !c.PDFToPPM {
		missing = append(missing, "pdftoppm")
	}
	if !c.Tesseract {
		missing = append(missing, "tesseract")
	}
	return missing
}

// MissingReason renders the missing-tool list as an OCR skip reason,
// e.g. "missing: pdftoppm, tesseract".
func (c Capabilities) MissingReason() string {
	return "missing: " + strings.Join(c.Missing(), ", ")
}
