package du

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// RootName is the name given to the root node.
const RootName = "."

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run measures the directory at opt.Path and returns the sorted tree with
// de-duplicated aggregate sizes.
//
// The root is stat-ed through "<path>/.", so a symbolic link naming a
// directory is measured as that directory. Failing to stat the root is the
// only fatal failure and is returned as a *PathError matching ErrRootStat.
// Every other failure is passed to opt.OnFailure and collected in
// Result.Failures.
//
// The scan can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if opt.FS == nil {
		opt.FS = OS{}
	}

	log := opt.Log
	if log == nil {
		log = discardLogger()
	}

	// filepath.Join would drop the trailing ".", which is what makes lstat
	// resolve a symlinked root.
	rootInfo, err := opt.FS.Lstat(opt.Path + string(filepath.Separator) + RootName)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}

		return nil, &PathError{Kind: ErrRootStat, Path: opt.Path, Err: err}
	}

	root := newNode(RootName, rootInfo)

	crawler := NewCrawler(opt.FS, NewPool(), opt.OnFailure, log)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, crawler.collector, progressHook, opt.ProgressInterval)

	log.WithField("path", opt.Path).Debug("starting scan")

	start := time.Now()

	if err := crawler.Crawl(ctx, root, opt.Path); err != nil {
		return nil, err
	}

	result := crawler.collector.finalize(opt.Path, root)
	result.Elapsed = time.Since(start)

	log.WithFields(logrus.Fields{
		"entries":    result.Entries,
		"duplicates": result.Duplicates,
		"failures":   result.FailureCount,
		"elapsed":    result.Elapsed,
	}).Debug("scan finished")

	return result, nil
}
