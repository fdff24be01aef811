// Package emitter writes the converted Markdown and its metadata
// sidecar to disk atomically.
package emitter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// Result reports where one document's outputs landed.
type Result struct {
	MarkdownPath string
	MetaPath     string
	Fingerprint  string
}

// Emit writes <docID>.md and <docID>.meta.json under outDir. The
// fingerprint is computed over the metadata and stamped into the
// sidecar before writing. Both files go through a uniquely named temp
// file in the same directory followed by a rename, so a crashed run
// never leaves a half-written output behind.
func Emit(markdown string, meta domain.Metadata, outDir string) (Result, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w: %v", domain.ErrWriteFailed, err)
	}

	fingerprint, err := meta.ComputeFingerprint()
	if err != nil {
		return Result{}, fmt.Errorf("fingerprinting metadata: %w", err)
	}
	meta.Fingerprint = fingerprint

	res := Result{
		MarkdownPath: filepath.Join(outDir, meta.DocID+".md"),
		MetaPath:     filepath.Join(outDir, meta.DocID+".meta.json"),
		Fingerprint:  fingerprint,
	}

	if err := writeAtomic(res.MarkdownPath, []byte(markdown)); err != nil {
		return Result{}, err
	}

	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("encoding metadata: %w", err)
	}
	raw = append(raw, '\n')
	if err := writeAtomic(res.MetaPath, raw); err != nil {
		return Result{}, err
	}

	return res, nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp." + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %v", filepath.Base(path), domain.ErrWriteFailed, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s into place: %w: %v", filepath.Base(path), domain.ErrWriteFailed, err)
	}
	return nil
}
