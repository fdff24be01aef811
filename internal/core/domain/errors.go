package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrCapabilityUnavailable indicates a required external binary
	// (pdftotext, pdftoppm, tesseract) is not installed. Not retried.
	ErrCapabilityUnavailable = errors.New("capability unavailable")

	// ErrDocumentUnreadable indicates the input document is missing or corrupt.
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrDocumentEncrypted indicates the document is password-protected.
	// Distinguished from ErrDocumentUnreadable so callers can message differently.
	ErrDocumentEncrypted = errors.New("document encrypted")

	// ErrExtractionFailed indicates a generic text-extraction failure.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrWriteFailed indicates output I/O failed during emission.
	ErrWriteFailed = errors.New("write failed")

	// ErrNoFilesFound indicates the input glob matched no documents.
	ErrNoFilesFound = errors.New("no files found")

	// ErrInvalidConfig indicates prd.yaml is missing or malformed.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrStructureNotFound indicates strict mode found no articles or
	// chapters in a document whose law mode requires them.
	ErrStructureNotFound = errors.New("structure not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
