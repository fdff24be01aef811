package lawtext

import (
	"regexp"
	"strings"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

var (
	reHyphenBreak = regexp.MustCompile(`(\w)-\n(\w)`)
	reOrphanParen = regexp.MustCompile(`^\s*\((\d+)\)\s*$`)
	reOrphanNum   = regexp.MustCompile(`^\s*(\d+)\.\s*$`)
	reOrphanLet   = regexp.MustCompile(`^\s*([a-z])\.\s*$`)
	reLetterLead  = regexp.MustCompile(`^\s*([a-z])\.\s+`)
	reNumLead     = regexp.MustCompile(`^\s*(\d+)\.\s+`)
)

// Cleanup repairs extraction artifacts in merged document text: broken
// hyphenation, residual header/footer lines that survived suppression,
// hard-wrapped sentences, and list markers orphaned on their own line.
// The result reads as continuous prose with Markdown-style bullets.
//
// Passes run in a fixed order because later passes assume earlier
// repairs: de-hyphenation before wrap joining, wrap joining before
// orphan-marker merging.
func Cleanup(text string) domain.CleanupResult {
	var stats domain.CleanupStats

	// Rejoin words split across a line break by a hyphen.
	stats.HyphensFixed = len(reHyphenBreak.FindAllStringIndex(text, -1))
	text = reHyphenBreak.ReplaceAllString(text, "${1}${2}")

	// Residual header/footer removal. Page-local suppression can miss
	// boilerplate when a document is short or a page was replaced by
	// OCR text, so the same strong patterns run once more over the
	// merged document.
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		switch {
		case isHeaderLine(line):
			stats.RemovedHeader++
			sampleRemoved(&stats, line)
		case isFooterLine(line) || rePlainNumberNarrow.MatchString(line):
			stats.RemovedFooter++
			sampleRemoved(&stats, line)
		default:
			kept = append(kept, line)
		}
	}

	// Soft-wrap joining: a line ending mid-sentence (last character is
	// ASCII alphanumeric) absorbs the next non-blank line, unless the
	// current line opens a structural unit that must keep its own line.
	var joined []string
	for _, line := range kept {
		if len(joined) > 0 {
			prev := joined[len(joined)-1]
			if endsASCIIAlnum(prev) && !reStructural.MatchString(strings.TrimSpace(prev)) &&
				strings.TrimSpace(line) != "" {
				joined[len(joined)-1] = prev + " " + strings.TrimLeft(line, " \t")
				continue
			}
		}
		joined = append(joined, line)
	}

	// Orphaned list markers — "(2)", "3." or "c." alone on a line —
	// merge with the following content line. Letter items become dash
	// bullets; numbered items collapse onto the canonical "1." marker
	// and let the Markdown renderer count.
	var out []string
	for i := 0; i < len(joined); i++ {
		line := joined[i]
		if i+1 < len(joined) {
			next := joined[i+1]
			trimmedNext := strings.TrimSpace(next)
			if trimmedNext != "" && !reStructural.MatchString(trimmedNext) {
				if m := reOrphanParen.FindStringSubmatch(line); m != nil {
					out = append(out, "("+m[1]+") "+trimmedNext)
					i++
					continue
				}
				if reOrphanNum.MatchString(line) {
					out = append(out, "1. "+trimmedNext)
					i++
					continue
				}
				if m := reOrphanLet.FindStringSubmatch(line); m != nil {
					out = append(out, "- ("+m[1]+") "+trimmedNext)
					i++
					continue
				}
			}
		}
		if m := reLetterLead.FindStringSubmatch(line); m != nil {
			out = append(out, "- ("+m[1]+") "+reLetterLead.ReplaceAllString(line, ""))
			continue
		}
		if reNumLead.MatchString(line) {
			// Canonical "1." marker; Markdown renderers renumber.
			out = append(out, "1. "+reNumLead.ReplaceAllString(line, ""))
			continue
		}
		out = append(out, line)
	}

	return domain.CleanupResult{
		Text:  strings.Join(out, "\n"),
		Stats: stats,
	}
}

func sampleRemoved(stats *domain.CleanupStats, line string) {
	if len(stats.SampleRemoved) < sampleLimit {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			stats.SampleRemoved = append(stats.SampleRemoved, trimmed)
		}
	}
}

// endsASCIIAlnum reports whether the line's last byte is an ASCII
// letter or digit, the signal for a hard-wrapped sentence.
func endsASCIIAlnum(line string) bool {
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return false
	}
	c := line[len(line)-1]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
