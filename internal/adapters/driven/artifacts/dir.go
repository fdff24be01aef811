// Package artifacts stores diagnostic side-outputs of a conversion run
// in a directory tree.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
)

// DirSink writes artifacts under a root directory. Failures are
// returned to the caller, which logs and continues: artifacts are
// diagnostics and never abort a conversion.
type DirSink struct {
	root string
}

var _ driven.ArtifactSink = (*DirSink)(nil)

// NewDirSink creates a sink rooted at dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{root: dir}
}

// Dir returns the sink's root directory.
func (s *DirSink) Dir() string {
	return s.root
}

// Write stores data at root/relPath, creating parent directories.
func (s *DirSink) Write(relPath string, data []byte) error {
	path := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating artifact dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing artifact %s: %w", relPath, err)
	}
	return nil
}
