package driven

import (
	"context"
	"time"
)

// RunRecord is one converted document as recorded in the run catalog.
type RunRecord struct {
	// DocID is the document identifier the files were emitted under.
	DocID string

	// Fingerprint is the metadata fingerprint of the emitted document.
	Fingerprint string

	// MarkdownPath and MetaPath are the emitted file locations.
	MarkdownPath string
	MetaPath     string

	// PageCount is the document's physical page count.
	PageCount int

	// CharacterCoverage and LeakRate snapshot the run's quality metrics.
	CharacterCoverage float64
	LeakRate          float64

	// ConvertedAt is when the run finished.
	ConvertedAt time.Time
}

// RunCatalog persists one RunRecord per converted document so reruns
// can be compared by fingerprint.
type RunCatalog interface {
	// Save stores or replaces the record for its DocID.
	Save(ctx context.Context, rec RunRecord) error

	// Latest returns the most recent record for docID, or nil (and no
	// error) when none exists.
	Latest(ctx context.Context, docID string) (*RunRecord, error)

	// List returns all records, most recent first.
	List(ctx context.Context) ([]RunRecord, error)

	// Close releases the underlying store.
	Close() error
}
