package driven

import (
	"context"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// TextExtractor produces per-page plain text for a document.
type TextExtractor interface {
	// Extract returns the ordered page texts of the document at path.
	// It fails with domain.ErrDocumentUnreadable for a missing file,
	// domain.ErrDocumentEncrypted for a password-protected one, and
	// domain.ErrExtractionFailed otherwise.
	Extract(ctx context.Context, path string) (domain.Pages, error)

	// CheckAvailable reports whether the extraction capability is
	// installed, returning domain.ErrCapabilityUnavailable when not.
	CheckAvailable() error
}
