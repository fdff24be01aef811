package services

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// FolderGuidance is printed when an input glob matches nothing, so a
// user who pointed the tool at an empty corpus knows how to lay one
// out.
const FolderGuidance = `Tidak ada berkas PDF yang cocok dengan pola masukan.
Susun korpus seperti ini, lalu jalankan ulang:
  data/
    uu/       undang-undang        (mis. data/uu/uu-13-2003.pdf)
    pp/       peraturan pemerintah (mis. data/pp/pp-35-2021.pdf)
    permen/   peraturan menteri    (mis. data/permen/permenaker-5-2021.pdf)
Pola masukan menerima glob, contoh: "data/**/*.pdf"`

// EnumeratePDFs expands the glob and returns matching regular files in
// sorted order. An empty match set is domain.ErrNoFilesFound.
func EnumeratePDFs(glob string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(glob)
	if err != nil {
		return nil, fmt.Errorf("expanding glob %q: %w", glob, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, match)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("glob %q: %w", glob, domain.ErrNoFilesFound)
	}
	return files, nil
}
