// Package fileutil provides extension filtering and symlink-safe directory
// traversal for pickfile.
//
// The package streams matches instead of collecting them: callers receive
// one path at a time, either through a visit callback (Walk) or through a
// lazy iterator (Matches). Nothing here ever holds the full list of matching
// paths in memory.
//
// # Extension Filter
//
// A Filter is an immutable set of normalized extensions. Tokens may be given
// with or without a single leading dot:
//
//	filter := fileutil.NewFilter("png", ".jpg")
//	filter.Match("/photos/cat.jpg")  // true
//	filter.Match("/photos/cat.JPG")  // false, matching is case-sensitive
//
// The extension of a path is the suffix after the last dot of its final
// component. Dotfiles without another dot use the remainder after the leading
// dot, so ".env" has extension "env" and "archive.tar.gz" has extension "gz".
//
// # Traversal
//
// Walk visits every descendant of a root directory whose extension is in the
// filter, depth-first in directory-read order:
//
//	fsys := osfs.New("/")
//	fileutil.Walk(fsys, "/data", filter, func(path string) {
//	    fmt.Println(path)
//	})
//
// Matches exposes the same stream as an iter.Seq:
//
//	for path := range fileutil.Matches(fsys, "/data", filter) {
//	    fmt.Println(path)
//	}
//
// # Traversal Rules
//
//   - A root that is a symbolic link produces no matches.
//   - Symbolic links found during the walk are never descended into. A link
//     whose own name matches the filter is still visited.
//   - Matching directories are visited and then descended into.
//   - Directories that cannot be read are skipped; the walk continues with
//     their siblings. Walk never returns an error.
//
// Filesystems are go-billy filesystems so the same traversal runs against the
// local disk (osfs) and in-memory trees (memfs).
package fileutil
