package lawtext

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// maxRemovalsPerPage bounds how many lines the suppressor may drop
// from a single page before the runaway guard kicks in and keeps the
// rest.
const maxRemovalsPerPage = 5

// sampleLimit bounds the removed-line sample carried in the result.
const sampleLimit = 5

// SuppressRepeated removes running headers, footers and page numbers
// from a page sequence before cleanup.
//
// Two signals combine. Strong structural patterns (decorated page
// numbers, "Hal./Halaman N" labels, known letterhead lines) are
// removed unconditionally. Everything else goes through a frequency
// heuristic: a normalised line becomes a candidate when it appears on
// at least ceil(ThresholdRatio × pages) pages (minimum one), is 3-120
// bytes long, and at least half of its occurrences sit at the first or
// last line of their page. The position requirement rejects body
// sentences that merely repeat while catching boilerplate glued to the
// page edges. Lines matching the structural whitelist (BAB, Pasal,
// Menimbang, Mengingat, PENJELASAN) are never candidates.
//
// A caller-supplied KeepPattern vetoes any removal. The runaway guard
// keeps lines beyond maxRemovalsPerPage per page and counts them as
// overruns instead.
func SuppressRepeated(pages domain.Pages, cfg domain.SuppressionConfig) domain.SuppressionResult {
	pageCount := len(pages)
	if pageCount == 0 {
		pageCount = 1
	}
	threshold := int(math.Ceil(cfg.ThresholdRatio * float64(pageCount)))
	if threshold < 1 {
		threshold = 1
	}

	freq := make(map[string]int)
	top := make(map[string]int)
	bottom := make(map[string]int)

	for _, page := range pages {
		lines := strings.Split(page, "\n")
		for li, raw := range lines {
			line := strings.TrimSpace(raw)
			if line == "" || reStructural.MatchString(line) {
				continue
			}
			norm := normaliseLine(line)
			freq[norm]++
			if li == 0 {
				top[norm]++
			}
			if li == len(lines)-1 {
				bottom[norm]++
			}
		}
	}

	candidates := make(map[string]bool)
	for line, count := range freq {
		if count < threshold {
			continue
		}
		if n := len(line); n < 3 || n > 120 {
			continue
		}
		if top[line]*2 >= count || bottom[line]*2 >= count {
			candidates[line] = true
		}
	}

	var res domain.SuppressionResult
	res.Pages = make(domain.Pages, 0, len(pages))

	for _, page := range pages {
		removed := 0
		var kept []string
		for _, raw := range strings.Split(page, "\n") {
			line := strings.TrimRightFunc(raw, unicode.IsSpace)
			norm := normaliseLine(line)

			drop, header, footer := false, false, false
			switch {
			case isHeaderLine(line):
				drop, header = true, true
			case reDashNumber.MatchString(line) || reHalaman.MatchString(line):
				drop, footer = true, true
			case rePlainNumberWide.MatchString(line):
				// Bare numbers are only dropped when frequency
				// analysis confirmed them as repeating footers.
				if candidates[norm] {
					drop, footer = true, true
				}
			default:
				if candidates[norm] {
					drop = true
					if top[norm] >= bottom[norm] {
						header = true
					} else {
						footer = true
					}
				}
			}

			if drop && cfg.KeepPattern != nil && cfg.KeepPattern.MatchString(line) {
				drop = false
			}

			if drop {
				if removed >= maxRemovalsPerPage {
					res.Stats.Overrun++
					kept = append(kept, line)
					continue
				}
				removed++
				if header {
					res.Stats.RemovedHeader++
				}
				if footer {
					res.Stats.RemovedFooter++
				}
				if len(res.SampleRemoved) < sampleLimit {
					res.SampleRemoved = append(res.SampleRemoved, strings.TrimSpace(line))
				}
				continue
			}
			kept = append(kept, line)
		}
		res.Pages = append(res.Pages, strings.Join(kept, "\n"))
	}

	res.Candidates = make([]string, 0, len(candidates))
	for line := range candidates {
		res.Candidates = append(res.Candidates, line)
	}
	sort.Strings(res.Candidates)

	return res
}
