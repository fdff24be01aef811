package domain

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Pages is the ordered per-page text of one document. The slice index is
// the zero-based physical page index and stays stable across the whole
// pipeline: suppression, OCR override and merge all key off it. Stages
// return new slices; a Pages value is never mutated in place.
type Pages []string

// Clone returns an independent copy of the page sequence.
func (p Pages) Clone() Pages {
	out := make(Pages, len(p))
	copy(out, p)
	return out
}

// DocID derives a filesystem-safe document identifier from a file stem.
// Empty or fully non-alphanumeric stems fall back to "doc".
func DocID(stem string) string {
	s := slug.Make(stem)
	if s == "" {
		return "doc"
	}
	return s
}

// IDAllocator hands out unique document IDs within one run, suffixing
// duplicates with -1, -2, ...
type IDAllocator struct {
	used map[string]bool
}

// NewIDAllocator creates an empty allocator.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{used: make(map[string]bool)}
}

// Allocate returns id unchanged if unused, otherwise the first free
// id-N candidate.
func (a *IDAllocator) Allocate(id string) string {
	if !a.used[id] {
		a.used[id] = true
		return id
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if !a.used[candidate] {
			a.used[candidate] = true
			return candidate
		}
	}
}
