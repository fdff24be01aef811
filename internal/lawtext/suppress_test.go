package lawtext

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

func repeatedBoilerplatePages(n int) domain.Pages {
	pages := make(domain.Pages, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, fmt.Sprintf("Lampiran Resmi\nIsi halaman nomor %d berbeda.\n- 3 -", i))
	}
	return pages
}

func TestSuppressRepeatedRemovesBoilerplate(t *testing.T) {
	pages := repeatedBoilerplatePages(4)

	res := SuppressRepeated(pages, domain.SuppressionConfig{ThresholdRatio: 0.60})

	require.Len(t, res.Pages, 4)
	for i, page := range res.Pages {
		assert.Equal(t, fmt.Sprintf("Isi halaman nomor %d berbeda.", i), page)
	}
	assert.Equal(t, 4, res.Stats.RemovedHeader, "repeated top line counted as header")
	assert.Equal(t, 4, res.Stats.RemovedFooter, "dash-number footers")
	assert.Zero(t, res.Stats.Overrun)
	assert.Contains(t, res.Candidates, "Lampiran Resmi")
	assert.Len(t, res.SampleRemoved, 5)
	assert.Equal(t, "Lampiran Resmi", res.SampleRemoved[0])
}

func TestSuppressRepeatedKeepPatternVetoes(t *testing.T) {
	pages := repeatedBoilerplatePages(4)

	res := SuppressRepeated(pages, domain.SuppressionConfig{
		ThresholdRatio: 0.60,
		KeepPattern:    regexp.MustCompile(`Lampiran`),
	})

	for _, page := range res.Pages {
		assert.Contains(t, page, "Lampiran Resmi", "vetoed line must survive")
	}
	assert.Zero(t, res.Stats.RemovedHeader)
	assert.Equal(t, 4, res.Stats.RemovedFooter, "veto is line-scoped, footers still go")
}

func TestSuppressRepeatedThreshold(t *testing.T) {
	// Five pages, boilerplate on only two: ceil(0.60*5) = 3, so the
	// line stays below threshold and survives.
	pages := domain.Pages{
		"Catatan Pinggir\nsatu",
		"dua",
		"Catatan Pinggir\ntiga",
		"empat",
		"lima",
	}

	res := SuppressRepeated(pages, domain.SuppressionConfig{ThresholdRatio: 0.60})

	assert.Empty(t, res.Candidates)
	assert.Zero(t, res.Stats.RemovedHeader)
	assert.Equal(t, pages, res.Pages)
}

func TestSuppressRepeatedStructuralLinesNeverCandidates(t *testing.T) {
	pages := domain.Pages{
		"Pasal 1\nketentuan pertama",
		"Pasal 1\nketentuan kedua",
		"Pasal 1\nketentuan ketiga",
	}

	res := SuppressRepeated(pages, domain.SuppressionConfig{ThresholdRatio: 0.60})

	assert.Empty(t, res.Candidates)
	for i, page := range res.Pages {
		assert.Contains(t, page, "Pasal 1", "page %d", i)
	}
}

func TestSuppressRepeatedBareNumberNeedsFrequency(t *testing.T) {
	// "123" repeats at every page bottom so it becomes a candidate and
	// is removed as a footer. "7" on a single page stays: a bare number
	// is only suppressed once frequency analysis confirms it.
	pages := domain.Pages{
		"alinea pembuka\n123",
		"alinea tengah\n7\nlanjutan alinea\n123",
		"alinea penutup\n123",
	}

	res := SuppressRepeated(pages, domain.SuppressionConfig{ThresholdRatio: 0.60})

	assert.Equal(t, 3, res.Stats.RemovedFooter)
	assert.Contains(t, res.Pages[1], "7")
	for _, page := range res.Pages {
		assert.NotContains(t, page, "123")
	}
}

func TestSuppressRepeatedOverrunGuard(t *testing.T) {
	page := "Hal. 1\nHal. 2\nHal. 3\nHal. 4\nHal. 5\nHal. 6\nHal. 7"

	res := SuppressRepeated(domain.Pages{page, "isi biasa"}, domain.SuppressionConfig{ThresholdRatio: 0.60})

	assert.Equal(t, 5, res.Stats.RemovedFooter)
	assert.Equal(t, 2, res.Stats.Overrun)
	assert.Equal(t, "Hal. 6\nHal. 7", res.Pages[0], "lines past the guard are kept")
}

func TestSuppressRepeatedStrongHeaders(t *testing.T) {
	pages := domain.Pages{
		"PRESIDEN REPUBLIK INDONESIA\nisi satu",
		"LEMBARAN NEGARA REPUBLIK INDONESIA TAHUN 2023 NOMOR 6\nisi dua",
	}

	res := SuppressRepeated(pages, domain.SuppressionConfig{ThresholdRatio: 0.60})

	assert.Equal(t, 2, res.Stats.RemovedHeader)
	assert.Equal(t, domain.Pages{"isi satu", "isi dua"}, res.Pages)
}
