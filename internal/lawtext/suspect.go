package lawtext

import (
	"unicode"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// DetectSuspects returns the zero-based indices of pages whose
// non-whitespace character count is strictly below minChars, in page
// order. A sparse page usually means the PDF has no embedded text
// layer there and extraction produced a near-empty placeholder, so the
// page is a candidate for OCR fallback.
func DetectSuspects(pages domain.Pages, minChars int) []int {
	var suspects []int
	for idx, page := range pages {
		count := 0
		for _, r := range page {
			if !unicode.IsSpace(r) {
				count++
			}
		}
		if count < minChars {
			suspects = append(suspects, idx)
		}
	}
	return suspects
}
