package du

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Crawler builds the tree below a directory node. It walks one directory at
// a time, depth-first, in the order the filesystem lists entries.
type Crawler struct {
	fs        FS
	pool      *Pool
	log       logrus.FieldLogger
	onFailure func(error)
	collector *collector
}

// NewCrawler creates a crawler reading from fsys and de-duplicating through
// pool. onFailure, if not nil, is called with every non-fatal *PathError as it
// happens. A nil log discards debug output.
func NewCrawler(fsys FS, pool *Pool, onFailure func(error), log logrus.FieldLogger) *Crawler {
	if log == nil {
		log = discardLogger()
	}

	return &Crawler{
		fs:        fsys,
		pool:      pool,
		log:       log,
		onFailure: onFailure,
		collector: newCollector(),
	}
}

// Crawl fills node with the entries of the directory at path, recursing into
// subdirectories, and accumulates node.Aggregate. Failures are reported and
// skipped; the only error returned is the context's once it is done.
func (c *Crawler) Crawl(ctx context.Context, node *Node, path string) error {
	c.log.WithField("path", path).Debug("crawling directory")

	dir, err := c.fs.Open(path)
	if err != nil {
		c.fail(ErrDirOpen, path, err)

		return nil
	}

	defer func() {
		if err := dir.Close(); err != nil {
			c.log.WithError(err).WithField("path", path).Debug("closing directory")
		}
	}()

	names, err := dir.Names()
	if err != nil {
		// Whatever was read before the failure is still crawled.
		c.fail(ErrDirRead, path, err)
	}

	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		childPath := filepath.Join(path, name)

		info, err := c.fs.Lstat(childPath)
		if err != nil {
			c.fail(ErrStat, childPath, err)

			continue
		}

		child := newNode(name, info)
		node.Children = append(node.Children, child)
		c.collector.add(info.Size)

		if child.IsDir() {
			if err := c.Crawl(ctx, child, childPath); err != nil {
				return err
			}
		}

		if c.pool.Observe(child.ID) {
			node.Aggregate += child.Total()
		} else {
			c.collector.addDuplicate()
			c.log.WithField("path", childPath).Debug("already counted, skipping size")
		}
	}

	SortChildren(node.Children)

	return nil
}

// fail records a non-fatal failure and hands it to the failure hook.
func (c *Crawler) fail(kind error, path string, err error) {
	// The path is already part of PathError.
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}

	failure := &PathError{Kind: kind, Path: path, Err: err}

	c.collector.addFailure(failure)

	if c.onFailure != nil {
		c.onFailure(failure)
	}
}
