package lawtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanupFixture(t *testing.T) {
	in := strings.Join([]string{
		"Menimbang:",
		"bahwa untuk melaksanakan keten-",
		"tuan peraturan.",
		"- 2 -",
		"(2)",
		"Setiap orang berhak atas pekerjaan.",
		"c.",
		"perlindungan upah.",
		"1.  program jaminan",
	}, "\n")

	res := Cleanup(in)

	want := strings.Join([]string{
		"Menimbang:",
		"bahwa untuk melaksanakan ketentuan peraturan.",
		"(2) Setiap orang berhak atas pekerjaan.",
		"- (c) perlindungan upah.",
		"1. program jaminan",
	}, "\n")
	assert.Equal(t, want, res.Text)
	assert.Equal(t, 1, res.Stats.HyphensFixed)
	assert.Equal(t, 1, res.Stats.RemovedFooter)
	assert.Zero(t, res.Stats.RemovedHeader)
	assert.Equal(t, []string{"- 2 -"}, res.Stats.SampleRemoved)
}

func TestCleanupHeaderFooterAndWrap(t *testing.T) {
	in := "PRESIDEN REPUBLIK INDONESIA\nAlinea berakhir\npada baris\n- 2 -\nBerikutnya."

	res := Cleanup(in)

	// The wrap join keys on the alphanumeric line ending alone, so the
	// sentence after the removed footer is absorbed too.
	assert.Equal(t, "Alinea berakhir pada baris Berikutnya.", res.Text)
	assert.Equal(t, 1, res.Stats.RemovedHeader)
	assert.Equal(t, 1, res.Stats.RemovedFooter)
}

func TestCleanupSoftWrapJoin(t *testing.T) {
	in := "Ketentuan ini berlaku bagi setiap\npekerja dan pemberi kerja."

	res := Cleanup(in)

	assert.Equal(t, "Ketentuan ini berlaku bagi setiap pekerja dan pemberi kerja.", res.Text)
}

func TestCleanupStructuralLinesNotJoined(t *testing.T) {
	in := "Pasal 5\nSetiap pekerja berhak atas upah."

	res := Cleanup(in)

	assert.Equal(t, "Pasal 5\nSetiap pekerja berhak atas upah.", res.Text,
		"article opener must keep its own line even though it ends in a digit")
}

func TestCleanupResidualRemoval(t *testing.T) {
	in := strings.Join([]string{
		"PRESIDEN REPUBLIK INDONESIA",
		"Isi dokumen.",
		"Hal. 4",
		"12",
		"Lanjutan isi.",
	}, "\n")

	res := Cleanup(in)

	assert.Equal(t, "Isi dokumen.\nLanjutan isi.", res.Text)
	assert.Equal(t, 1, res.Stats.RemovedHeader)
	assert.Equal(t, 2, res.Stats.RemovedFooter)
}

func TestCleanupLetterItemBecomesBullet(t *testing.T) {
	res := Cleanup("a. hak asasi manusia.")
	assert.Equal(t, "- (a) hak asasi manusia.", res.Text)
}

func TestCleanupNumberedItemsCanonicalised(t *testing.T) {
	in := "7.  program jaminan sosial.\n8.\nupah minimum."

	res := Cleanup(in)

	assert.Equal(t, "1. program jaminan sosial.\n1. upah minimum.", res.Text,
		"marker form is normalised without sequential renumbering")
}

func TestCleanupDeterministic(t *testing.T) {
	in := "beberapa kata ter-\nputus\n- 7 -\n(1)\nayat pertama."
	first := Cleanup(in)
	second := Cleanup(in)
	assert.Equal(t, first, second)
}
