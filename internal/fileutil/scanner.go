package fileutil

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// maxListAttempts bounds how often a directory is re-listed after an entry
// disappears mid-read.
const maxListAttempts = 3

// SkipFunc is notified when a directory cannot be read and its subtree is
// skipped. It never stops the walk.
type SkipFunc func(dir string, err error)

// VisitFunc receives each matching path. The string is owned by the caller
// once delivered.
type VisitFunc func(path string)

// Walker performs depth-first, symlink-safe traversals of a filesystem,
// reporting entries accepted by its Filter.
type Walker struct {
	fs     billy.Filesystem
	filter Filter
	onSkip SkipFunc
	onLink func(path string)
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithSkipHandler registers a callback for unreadable directories.
func WithSkipHandler(fn SkipFunc) WalkerOption {
	return func(w *Walker) {
		w.onSkip = fn
	}
}

// WithSymlinkHandler registers a callback for symbolic links the walk
// refuses to descend into, including a symlinked root.
func WithSymlinkHandler(fn func(path string)) WalkerOption {
	return func(w *Walker) {
		w.onLink = fn
	}
}

// NewWalker creates a Walker over fsys that reports entries matching filter.
func NewWalker(fsys billy.Filesystem, filter Filter, opts ...WalkerOption) *Walker {
	w := &Walker{
		fs:     fsys,
		filter: filter,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk visits every matching descendant of root, calling visit once per match
// before descending into it. Unreadable directories are skipped.
func (w *Walker) Walk(root string, visit VisitFunc) {
	w.walk(root, func(path string) bool {
		visit(path)
		return true
	})
}

// Matches returns a lazy sequence of the matching descendants of root.
// Each range over the sequence performs a fresh traversal; breaking out of
// the loop stops the traversal.
func (w *Walker) Matches(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		w.walk(root, yield)
	}
}

// walk handles the root entry and starts the recursive descent.
func (w *Walker) walk(root string, yield func(string) bool) {
	info, err := w.fs.Lstat(root)
	if err != nil {
		w.skip(root, err)
		return
	}

	if isSymlink(info) {
		w.link(root)
		return
	}
	if !info.IsDir() {
		return
	}

	w.walkDir(root, yield)
}

// walkDir reads one directory and recurses into its subdirectories. It
// returns false once the consumer has asked to stop.
func (w *Walker) walkDir(dir string, yield func(string) bool) bool {
	// ReadDir opens, lists, and closes the directory before we recurse, so no
	// handle is held across the descent.
	entries, err := w.readDir(dir)
	if err != nil {
		w.skip(dir, err)
		return true
	}

	for _, entry := range entries {
		path := w.fs.Join(dir, entry.Name())

		if w.filter.Match(path) && !yield(path) {
			return false
		}

		if isSymlink(entry) {
			w.link(path)
			continue
		}
		if !entry.IsDir() {
			continue
		}

		if !w.walkDir(path, yield) {
			return false
		}
	}

	return true
}

// readDir lists dir, retrying when the listing failed only because one of its
// entries vanished between the read and its Lstat. billy's osfs fails the
// whole listing in that case, which would drop every sibling with it.
func (w *Walker) readDir(dir string) ([]os.FileInfo, error) {
	var err error
	for attempt := 0; attempt < maxListAttempts; attempt++ {
		var entries []os.FileInfo
		entries, err = w.fs.ReadDir(dir)
		if err == nil || !vanishedEntry(dir, err) {
			return entries, err
		}
	}
	return nil, err
}

// vanishedEntry reports whether err is a not-exist error for a path other
// than dir itself.
func vanishedEntry(dir string, err error) bool {
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return false
	}
	return errors.Is(err, os.ErrNotExist) && filepath.Clean(pathErr.Path) != filepath.Clean(dir)
}

func (w *Walker) skip(dir string, err error) {
	if w.onSkip != nil {
		w.onSkip(dir, err)
	}
}

func (w *Walker) link(path string) {
	if w.onLink != nil {
		w.onLink(path)
	}
}

func isSymlink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}

// Walk visits every descendant of root in fsys whose extension is accepted by
// filter. See Walker.Walk.
func Walk(fsys billy.Filesystem, root string, filter Filter, visit VisitFunc) {
	NewWalker(fsys, filter).Walk(root, visit)
}

// Matches returns the matching descendants of root as a lazy sequence.
// See Walker.Matches.
func Matches(fsys billy.Filesystem, root string, filter Filter) iter.Seq[string] {
	return NewWalker(fsys, filter).Matches(root)
}
