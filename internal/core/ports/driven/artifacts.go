package driven

// ArtifactSink receives diagnostic side-writes: intermediate stage
// dumps, OCR page images, suppressor previews. It is best-effort by
// contract — callers log a failed write and continue; a sink error
// never aborts the pipeline.
type ArtifactSink interface {
	// Write stores data under the sink-relative path, creating parent
	// directories as needed.
	Write(relPath string, data []byte) error

	// Dir returns the sink's root directory on disk.
	Dir() string
}
