package du

import (
	"io"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Result holds the crawled tree and the figures gathered on the way.
type Result struct {
	// Path is the directory that was measured.
	Path string `json:"path"`
	// Root is the synthesized "." node for Path.
	Root *Node `json:"root"`
	// Entries is the number of entries stat-ed successfully below the root.
	Entries int64 `json:"entries"`
	// Duplicates is the number of entries whose identity was already counted.
	Duplicates int64 `json:"duplicates"`
	// Failures collects every non-fatal failure of the scan.
	Failures *multierror.Error `json:"-"`
	// FailureCount is the number of failures.
	FailureCount int `json:"failure_count"`
	// Elapsed is the total time taken by the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Total returns the unique size of the whole tree.
func (r *Result) Total() int64 {
	return r.Root.Total()
}

// Options configures a scan.
type Options struct {
	// Path is the directory to measure.
	Path string
	// FS is the filesystem to read, the operating system's if nil.
	FS FS
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// OnFailure receives each non-fatal failure as it happens.
	OnFailure func(error)
	// Log receives debug output. Nil discards it.
	Log logrus.FieldLogger
}

// collector counts what the crawler has seen. The progress reporter reads it
// from its own goroutine, hence the mutex.
type collector struct {
	mu         sync.Mutex
	entries    int64
	bytes      int64
	duplicates int64
	failures   *multierror.Error
}

func newCollector() *collector {
	return &collector{}
}

// add records one stat-ed entry.
func (c *collector) add(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries++
	c.bytes += size
}

func (c *collector) addDuplicate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.duplicates++
}

func (c *collector) addFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failures = multierror.Append(c.failures, err)
}

// progress returns the counters shown while scanning.
func (c *collector) progress() (entries, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries, c.bytes
}

// finalize copies the counters into a Result for root.
func (c *collector) finalize(path string, root *Node) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	var failureCount int
	if c.failures != nil {
		failureCount = len(c.failures.Errors)
	}

	return &Result{
		Path:         path,
		Root:         root,
		Entries:      c.entries,
		Duplicates:   c.duplicates,
		Failures:     c.failures,
		FailureCount: failureCount,
	}
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}
