package driven

import "context"

// PageRenderer rasterises one document page to an image file.
type PageRenderer interface {
	// RenderPage renders the 1-based page of the document at path into
	// an image under dir and returns the image path. The reason code of
	// a failure is carried in the error text.
	RenderPage(ctx context.Context, path string, pageNo int, dpi int, dir string) (string, error)

	// CheckAvailable reports whether the rasterisation capability is
	// installed, returning domain.ErrCapabilityUnavailable when not.
	CheckAvailable() error
}

// Recogniser turns a page image into text.
type Recogniser interface {
	// Recognise runs OCR over the image with the given language tag,
	// page segmentation mode and engine mode. Empty recognised text is
	// an error (reason code "empty_text").
	Recognise(ctx context.Context, imagePath, lang string, psm, oem int) (string, error)

	// CheckAvailable reports whether the recognition capability is
	// installed, returning domain.ErrCapabilityUnavailable when not.
	CheckAvailable() error
}
