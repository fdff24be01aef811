package lawtext

import (
	"regexp"
	"strings"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

var (
	reChapter   = regexp.MustCompile(`^\s*BAB\s+([IVXLCDM]+)\b(.*)$`)
	reArticle   = regexp.MustCompile(`^\s*Pasal\s+(\d+)\s*$`)
	rePreamble  = regexp.MustCompile(`^\s*(Menimbang|Mengingat)\s*:\s*$`)
	rePenj      = regexp.MustCompile(`^\s*PENJELASAN\s*$`)
	reRomanSect = regexp.MustCompile(`^\s*([IVX]+)\.\s+([A-Z].+)$`)
)

// PromoteHeadings rewrites structural lines of a statute as Markdown
// headings and counts what it found. Chapters (BAB), articles (Pasal),
// the Menimbang/Mengingat preamble sections and the PENJELASAN
// elucidation marker become level-two headings; roman-numbered
// elucidation sections become level-three headings.
//
// Rules run in a fixed order per line and the first match wins, so a
// chapter line is always a chapter and never mistaken for a roman
// section.
func PromoteHeadings(text string) domain.PromotionResult {
	var found domain.StructuralCounts
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if m := reChapter.FindStringSubmatch(line); m != nil {
			found.Bab++
			out = append(out, "## BAB "+m[1]+strings.TrimRight(m[2], " \t"))
			continue
		}
		if m := reArticle.FindStringSubmatch(line); m != nil {
			found.Pasal++
			out = append(out, "## Pasal "+m[1])
			continue
		}
		if m := rePreamble.FindStringSubmatch(line); m != nil {
			if m[1] == "Menimbang" {
				found.Menimbang = true
			} else {
				found.Mengingat = true
			}
			out = append(out, "## "+m[1])
			continue
		}
		if rePenj.MatchString(line) {
			found.Penjelasan = true
			out = append(out, "## PENJELASAN")
			continue
		}
		if m := reRomanSect.FindStringSubmatch(line); m != nil {
			out = append(out, "### "+m[1]+". "+strings.TrimRight(m[2], " \t"))
			continue
		}
		out = append(out, line)
	}

	return domain.PromotionResult{
		Markdown: strings.Join(out, "\n"),
		Found:    found,
	}
}
