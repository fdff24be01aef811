package emitter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

func sampleMeta() domain.Metadata {
	return domain.Metadata{
		DocID:        "uu-13-2003",
		Engine:       "poppler",
		SuspectPages: []int{2},
		OCR:          domain.OCRMeta{Enabled: true, Language: "ind", PSM: 4, OEM: 1, DPI: 300},
		Found:        domain.StructuralCounts{Pasal: 3, Bab: 1, Menimbang: true},
		PageCount:    5,
	}
}

func TestEmitWritesBothFiles(t *testing.T) {
	dir := t.TempDir()

	res, err := Emit("## Pasal 1\nisi", sampleMeta(), dir)
	require.NoError(t, err)

	md, err := os.ReadFile(res.MarkdownPath)
	require.NoError(t, err)
	assert.Equal(t, "## Pasal 1\nisi", string(md))

	raw, err := os.ReadFile(res.MetaPath)
	require.NoError(t, err)
	var got domain.Metadata
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "uu-13-2003", got.DocID)
	assert.Equal(t, res.Fingerprint, got.Fingerprint, "sidecar carries the fingerprint")
	assert.NotEmpty(t, res.Fingerprint)
}

func TestEmitCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	res, err := Emit("teks", sampleMeta(), dir)
	require.NoError(t, err)
	assert.FileExists(t, res.MarkdownPath)
}

func TestEmitLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Emit("teks", sampleMeta(), dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEmitFingerprintStableAcrossTiming(t *testing.T) {
	meta := sampleMeta()
	meta.Timing = domain.Timing{PerPageMillis: []int64{12, 40}, P95Millis: 40}
	meta.Timestamps = domain.Timestamps{StartedMillis: 1, FinishedMillis: 2}

	first, err := Emit("teks", meta, t.TempDir())
	require.NoError(t, err)

	meta.Timing = domain.Timing{PerPageMillis: []int64{99}, P95Millis: 99}
	meta.Timestamps = domain.Timestamps{StartedMillis: 7, FinishedMillis: 9}
	second, err := Emit("teks", meta, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint,
		"wall-clock fields must not affect the fingerprint")
}

func TestEmitWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// An existing file where the output directory should be makes
	// MkdirAll fail.
	blocked := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	_, err := Emit("teks", sampleMeta(), filepath.Join(blocked, "out"))
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
}
