package fileutil

import (
	"path/filepath"
	"strings"
)

// Filter is an immutable set of accepted extensions without leading dots.
// The zero value matches nothing.
type Filter struct {
	exts map[string]struct{}
}

// NormalizeExtension strips at most one leading dot from an extension token.
func NormalizeExtension(token string) string {
	return strings.TrimPrefix(token, ".")
}

// NewFilter builds a Filter from raw extension tokens.
// Tokens that normalize to the empty string are dropped.
func NewFilter(tokens ...string) Filter {
	exts := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		ext := NormalizeExtension(token)
		if ext == "" {
			continue
		}
		exts[ext] = struct{}{}
	}
	return Filter{exts: exts}
}

// Len returns the number of distinct extensions in the filter.
func (f Filter) Len() int {
	return len(f.exts)
}

// Extensions returns the accepted extensions in no particular order.
func (f Filter) Extensions() []string {
	out := make([]string, 0, len(f.exts))
	for ext := range f.exts {
		out = append(out, ext)
	}
	return out
}

// Contains reports whether ext (already normalized) is accepted.
func (f Filter) Contains(ext string) bool {
	_, ok := f.exts[ext]
	return ok
}

// Match reports whether the extension of path is in the filter.
func (f Filter) Match(path string) bool {
	if len(f.exts) == 0 {
		return false
	}
	ext, ok := Extension(path)
	if !ok {
		return false
	}
	return f.Contains(ext)
}

// Extension derives the extension of the final component of path.
//
// The trailing dot-delimited suffix is used when the component has a
// non-empty stem before its last dot. Otherwise a component starting with a
// dot yields everything after that dot. Empty extensions are reported as
// absent, so "file." and "." have none.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return "", false
	}

	if idx := strings.LastIndexByte(name, '.'); idx > 0 {
		ext := name[idx+1:]
		return ext, ext != ""
	}

	if strings.HasPrefix(name, ".") {
		ext := name[1:]
		return ext, ext != ""
	}

	return "", false
}
