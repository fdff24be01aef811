package lawtext

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

var (
	reSplitParen = regexp.MustCompile(`\(\s*\n\s*\d+\)`)
	reLonelyLet  = regexp.MustCompile(`(?m)^\s*[a-z]\.\s*$`)
	reLonelyNum  = regexp.MustCompile(`(?m)^\s*\d+\.\s*$`)
)

// ComputeMetrics scores the converted Markdown against the raw
// extraction.
//
// CharacterCoverage compares non-whitespace character counts and is
// clamped to 1.0: cleanup removes boilerplate, so coverage above one
// would only reflect the Markdown heading markup we added. LeakRate is
// the share of known header/footer lines that survived into the
// Markdown, over all such lines seen in either text. SplitViolations
// counts list markers still broken across lines after cleanup.
func ComputeMetrics(rawText, markdown string) domain.Metrics {
	var m domain.Metrics

	rawNW := countNonSpace(rawText)
	mdNW := countNonSpace(markdown)
	if rawNW > 0 {
		cov := float64(mdNW) / float64(rawNW)
		if cov > 1 {
			cov = 1
		}
		m.CharacterCoverage = cov
	}

	rawH, rawF := countLeakLines(rawText)
	mdH, mdF := countLeakLines(markdown)
	if total := rawH + rawF + mdH + mdF; total > 0 {
		m.LeakRate = float64(mdH+mdF) / float64(total)
	}

	m.SplitViolations = len(reSplitParen.FindAllStringIndex(markdown, -1)) +
		len(reLonelyLet.FindAllStringIndex(markdown, -1)) +
		len(reLonelyNum.FindAllStringIndex(markdown, -1))

	return m
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// countLeakLines tallies lines matching the gazette letterhead
// (headers) and page-number footer patterns.
func countLeakLines(s string) (headers, footers int) {
	for _, line := range strings.Split(s, "\n") {
		if reHeadLembaran.MatchString(line) {
			headers++
		}
		if isFooterLine(line) {
			footers++
		}
	}
	return headers, footers
}
