package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexindo/perundang-cli/internal/core/domain"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
)

// stubExtractor returns scripted pages.
type stubExtractor struct {
	pages domain.Pages
	err   error
}

func (e *stubExtractor) Extract(context.Context, string) (domain.Pages, error) {
	return e.pages.Clone(), e.err
}

func (e *stubExtractor) CheckAvailable() error { return nil }

// memCatalog is an in-memory RunCatalog.
type memCatalog struct {
	saved []driven.RunRecord
}

func (c *memCatalog) Save(_ context.Context, rec driven.RunRecord) error {
	c.saved = append(c.saved, rec)
	return nil
}

func (c *memCatalog) Latest(context.Context, string) (*driven.RunRecord, error) { return nil, nil }
func (c *memCatalog) List(context.Context) ([]driven.RunRecord, error)          { return nil, nil }
func (c *memCatalog) Close() error                                              { return nil }

func statutePages() domain.Pages {
	return domain.Pages{
		"PRESIDEN REPUBLIK INDONESIA\nBAB I\nKETENTUAN UMUM\n\nPasal 1\nKetentuan pertama diatur.\n- 1 -",
		"PRESIDEN REPUBLIK INDONESIA\nPasal 2\nKetentuan kedua berlaku untuk seluruh pekerja dan pemberi kerja di wilayah Indonesia.\n- 2 -",
	}
}

func TestConvertPipeline(t *testing.T) {
	extractor := &stubExtractor{pages: statutePages()}
	catalog := &memCatalog{}
	svc := NewConvertService(extractor, nil, catalog)

	res, err := svc.Convert(context.Background(), "/in/uu-13-2003.pdf", "uu-13-2003", t.TempDir(),
		ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, "uu-13-2003", res.DocID)
	assert.FileExists(t, res.MarkdownPath)
	assert.FileExists(t, res.MetaPath)
	assert.NotEmpty(t, res.Fingerprint)

	meta := res.Metadata
	assert.Equal(t, "poppler", meta.Engine)
	assert.Equal(t, 2, meta.PageCount)
	assert.Empty(t, meta.SuspectPages)
	assert.Equal(t, 2, meta.Found.Pasal)
	assert.Equal(t, 1, meta.Found.Bab)
	assert.Equal(t, 2, meta.Stats.RemovedHeader)
	assert.Equal(t, 2, meta.Stats.RemovedFooter)
	assert.Zero(t, meta.Metrics.LeakRate, "boilerplate must not leak into the Markdown")
	assert.InDelta(t, 1.0, meta.Metrics.CoveragePages, 1e-9)
	assert.Positive(t, meta.Metrics.CharacterCoverage)

	require.Len(t, catalog.saved, 1)
	assert.Equal(t, res.Fingerprint, catalog.saved[0].Fingerprint)
}

func TestConvertMarkdownContent(t *testing.T) {
	svc := NewConvertService(&stubExtractor{pages: statutePages()}, nil, nil)

	res, err := svc.Convert(context.Background(), "/in/doc.pdf", "doc", t.TempDir(),
		ConvertOptions{})
	require.NoError(t, err)

	md := readFile(t, res.MarkdownPath)
	assert.Contains(t, md, "## BAB I")
	assert.Contains(t, md, "## Pasal 1")
	assert.Contains(t, md, "## Pasal 2")
	assert.NotContains(t, md, "PRESIDEN REPUBLIK INDONESIA")
	assert.NotContains(t, md, "- 1 -")
}

func TestConvertFingerprintStable(t *testing.T) {
	svc := NewConvertService(&stubExtractor{pages: statutePages()}, nil, nil)

	first, err := svc.Convert(context.Background(), "/in/doc.pdf", "doc", t.TempDir(),
		ConvertOptions{})
	require.NoError(t, err)

	second, err := svc.Convert(context.Background(), "/in/doc.pdf", "doc", t.TempDir(),
		ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint,
		"identical input must fingerprint identically across runs")
}

func TestConvertStrictStructureMissing(t *testing.T) {
	pages := domain.Pages{"Dokumen biasa tanpa struktur perundang-undangan sama sekali, hanya paragraf berjalan."}
	svc := NewConvertService(&stubExtractor{pages: pages}, nil, nil)

	_, err := svc.Convert(context.Background(), "/in/memo.pdf", "memo", t.TempDir(),
		ConvertOptions{LawMode: "pp", Strict: true})
	assert.ErrorIs(t, err, domain.ErrStructureNotFound)
}

func TestConvertStrictAutoModeSkipsStructureCheck(t *testing.T) {
	pages := domain.Pages{"Dokumen biasa tanpa struktur perundang-undangan sama sekali, hanya paragraf berjalan."}
	svc := NewConvertService(&stubExtractor{pages: pages}, nil, nil)

	_, err := svc.Convert(context.Background(), "/in/memo.pdf", "memo", t.TempDir(),
		ConvertOptions{Strict: true})
	assert.NoError(t, err, "only pp and permen modes require a chapter/article skeleton")
}

func TestConvertOCRUnavailable(t *testing.T) {
	// A near-empty page marks it suspect; with the OCR tools missing
	// the pass is skipped and recorded as such.
	pages := domain.Pages{"x"}
	ocr := NewOCRService(&stubRenderer{unavailable: true}, &stubRecogniser{unavailable: true}, nil)
	svc := NewConvertService(&stubExtractor{pages: pages}, ocr, nil)

	res, err := svc.Convert(context.Background(), "/in/scan.pdf", "scan", t.TempDir(),
		ConvertOptions{WithOCR: true})
	require.NoError(t, err)

	meta := res.Metadata
	assert.Equal(t, []int{0}, meta.SuspectPages)
	assert.True(t, meta.OCR.Enabled)
	assert.False(t, meta.OCR.Ran)
	assert.Equal(t, "tesseract_missing", meta.OCR.SkippedReason)
	assert.Empty(t, meta.OCR.RunPages)
	assert.InDelta(t, 0.0, meta.Metrics.CoveragePages, 1e-9)
}

func TestConvertOCRRecoversSuspectPage(t *testing.T) {
	pages := domain.Pages{
		"x",
		"Halaman kedua berisi teks panjang yang berhasil diekstraksi secara normal oleh poppler tanpa masalah.",
	}
	recovered := "Teks hasil OCR untuk halaman yang gagal diekstraksi secara normal."
	rec := &stubRecogniser{script: map[string]string{"ind/4": recovered}}
	ocr := NewOCRService(&stubRenderer{}, rec, nil)
	svc := NewConvertService(&stubExtractor{pages: pages}, ocr, nil)

	res, err := svc.Convert(context.Background(), "/in/scan.pdf", "scan", t.TempDir(),
		ConvertOptions{WithOCR: true})
	require.NoError(t, err)

	meta := res.Metadata
	assert.True(t, meta.OCR.Ran)
	assert.Equal(t, []int{0}, meta.OCR.RunPages)
	assert.Empty(t, meta.OCR.SkippedReason)
	assert.Equal(t, []int{0}, meta.SuspectPages)
	assert.InDelta(t, 1.0, meta.Metrics.CoveragePages, 1e-9)
	assert.Contains(t, readFile(t, res.MarkdownPath), "Teks hasil OCR")
}

func TestConvertRejectsLowDPI(t *testing.T) {
	svc := NewConvertService(&stubExtractor{pages: statutePages()}, nil, nil)

	_, err := svc.Convert(context.Background(), "/in/doc.pdf", "doc", t.TempDir(),
		ConvertOptions{OCRDPI: 50})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConvertExtractionError(t *testing.T) {
	svc := NewConvertService(&stubExtractor{err: domain.ErrDocumentEncrypted}, nil, nil)

	_, err := svc.Convert(context.Background(), "/in/locked.pdf", "locked", t.TempDir(), ConvertOptions{})
	assert.ErrorIs(t, err, domain.ErrDocumentEncrypted)
}

func TestConvertWritesArtifacts(t *testing.T) {
	sink := &memSink{files: map[string][]byte{}}
	svc := NewConvertService(&stubExtractor{pages: statutePages()}, nil, nil)

	_, err := svc.Convert(context.Background(), "/in/doc.pdf", "doc", t.TempDir(),
		ConvertOptions{Artifacts: sink})
	require.NoError(t, err)

	for _, name := range []string{"step1_extract.txt", "step2_merge.txt", "step3_md.txt", "suppressor_preview.txt"} {
		assert.Contains(t, sink.files, name)
	}
	assert.Contains(t, string(sink.files["step1_extract.txt"]), "PRESIDEN REPUBLIK INDONESIA")
	assert.NotContains(t, string(sink.files["step2_merge.txt"]), "PRESIDEN REPUBLIK INDONESIA")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}
