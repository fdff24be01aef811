package lawtext

import (
	"regexp"
	"strings"
)

// Line patterns shared across the suppressor, the cleanup engine and
// the metrics computer. The dash classes include the figure dash, en
// dash, em dash and minus sign that PDF extraction produces for
// decorated page numbers.
var (
	// reDashNumber matches decorated page-number footers: "- 2 -",
	// "— 15 —" and similar.
	reDashNumber = regexp.MustCompile(`^\s*[\x{2012}\x{2013}\x{2014}\x{2212}-]{1,3}\s*\d+\s*[\x{2012}\x{2013}\x{2014}\x{2212}-]{1,3}\s*$`)

	// reSimpleDashNumber matches the plain ASCII "- N -" footer.
	reSimpleDashNumber = regexp.MustCompile(`^\s*-\s*\d+\s*-\s*$`)

	// reHalaman matches "Hal. N" / "Halaman N" page labels.
	reHalaman = regexp.MustCompile(`(?i)^\s*Hal(?:\.|aman)\s*\d+\s*$`)

	// rePlainNumberWide matches a bare page number of up to four digits.
	// Only removed by the suppressor when frequency analysis confirms it.
	rePlainNumberWide = regexp.MustCompile(`^\s*\d{1,4}\s*$`)

	// rePlainNumberNarrow matches a bare 1-3 digit line; removed
	// unconditionally by the cleanup safety net.
	rePlainNumberNarrow = regexp.MustCompile(`^\s*\d{1,3}\s*$`)

	// Known letterhead lines repeated on nearly every page of the
	// statute gazettes this tool targets.
	reHeadPresiden    = regexp.MustCompile(`(?i)^\s*PRESIDEN\s+REPUBLIK\s+INDONESIA\s*$`)
	reHeadKementerian = regexp.MustCompile(`(?i)^\s*KEMENTERIAN\s+KETENAGAKERJAAN\s*(RI)?\s*$`)
	reHeadLembaran    = regexp.MustCompile(`(?i)^\s*(TAMBAHAN\s+)?LEMBARAN\s+NEGARA\s+REPUBLIK\s+INDONESIA.*$`)

	// reStructural matches chapter, article and preamble section
	// openers. Lines matching it are never suppression candidates and
	// always start a new line during soft-wrap joining.
	reStructural = regexp.MustCompile(`(?i)^(BAB\s+[IVXLCDM]|Pasal\s+\d+|Menimbang:?|Mengingat:?|PENJELASAN)\b`)

	// reSpaces collapses internal whitespace when normalising lines.
	reSpaces = regexp.MustCompile(`\s+`)
)

// isHeaderLine reports whether the line is a known letterhead.
func isHeaderLine(line string) bool {
	return reHeadPresiden.MatchString(line) ||
		reHeadKementerian.MatchString(line) ||
		reHeadLembaran.MatchString(line)
}

// isFooterLine reports whether the line is a page-number footer or label.
func isFooterLine(line string) bool {
	return reSimpleDashNumber.MatchString(line) ||
		reDashNumber.MatchString(line) ||
		reHalaman.MatchString(line)
}

// normaliseLine trims a line and collapses internal whitespace runs to
// single spaces, producing the key used for frequency tallies.
func normaliseLine(line string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(line), " ")
}
