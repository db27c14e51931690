// Package picker chooses one file uniformly at random from a directory tree.
//
// It couples the streaming traversal in fileutil with the reservoir in
// sampler: each match is observed as soon as it is found, so memory use does
// not grow with the number of matching files.
package picker

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/harrison/pickfile/internal/fileutil"
	"github.com/harrison/pickfile/internal/logger"
	"github.com/harrison/pickfile/internal/sampler"
)

// Result is the outcome of a pick. Found is false when no entry matched, in
// which case Path is empty and Count is zero.
type Result struct {
	Path  string
	Found bool
	Count int
}

// Picker runs selections over a filesystem.
type Picker struct {
	fs     billy.Filesystem
	source sampler.Source
	log    logger.Logger
}

// Option configures a Picker.
type Option func(*Picker)

// WithSource sets the random source. Defaults to a clock-seeded source.
func WithSource(src sampler.Source) Option {
	return func(p *Picker) {
		p.source = src
	}
}

// WithLogger sets the logger for traversal diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(p *Picker) {
		p.log = l
	}
}

// New creates a Picker over fsys.
func New(fsys billy.Filesystem, opts ...Option) *Picker {
	p := &Picker{
		fs:  fsys,
		log: logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.source == nil {
		p.source = sampler.NewClockSource()
	}
	return p
}

// Pick walks root and returns one matching entry chosen uniformly at random.
// Unreadable directories and a symlinked root reduce the candidates but are
// not errors.
func (p *Picker) Pick(root string, filter fileutil.Filter) Result {
	walker := fileutil.NewWalker(p.fs, filter,
		fileutil.WithSkipHandler(func(dir string, err error) {
			p.log.LogDebug(fmt.Sprintf("skipping unreadable directory %s: %v", dir, err))
		}),
		fileutil.WithSymlinkHandler(func(path string) {
			p.log.LogTrace(fmt.Sprintf("not following symlink %s", path))
		}),
	)

	reservoir := sampler.NewReservoir(p.source)
	for path := range walker.Matches(root) {
		p.log.LogTrace(fmt.Sprintf("match %s", path))
		reservoir.Observe(path)
	}

	p.log.LogDebug(fmt.Sprintf("observed %d matching entries under %s", reservoir.Count(), root))

	path, found := reservoir.Chosen()
	return Result{
		Path:  path,
		Found: found,
		Count: reservoir.Count(),
	}
}

// Pick is a convenience wrapper that builds the filter from raw extension
// tokens and uses a clock-seeded source.
func Pick(fsys billy.Filesystem, root string, extensions ...string) Result {
	return New(fsys).Pick(root, fileutil.NewFilter(extensions...))
}
