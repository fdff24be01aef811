package lawtext

import (
	"strings"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// ApplyOverrides returns a new page sequence with each override's text
// substituted at its page index. Out-of-range indices are ignored; all
// other pages are untouched. The input is never mutated.
func ApplyOverrides(pages domain.Pages, overrides []domain.OCROverride) domain.Pages {
	out := pages.Clone()
	for _, ov := range overrides {
		if ov.PageIndex >= 0 && ov.PageIndex < len(out) {
			out[ov.PageIndex] = ov.Text
		}
	}
	return out
}

// JoinPages concatenates a page sequence into one document string with
// a single newline between pages.
func JoinPages(pages domain.Pages) string {
	return strings.Join(pages, "\n")
}
