package locstat

import (
	"sort"
	"sync/atomic"
	"time"
)

// KeyAll is the bucket that aggregates every file when the report is not
// broken down by extension. It never appears in a per-type report.
const KeyAll = "ALL"

// resultBuffer is the capacity of the channel between walk workers and the
// reducer.
const resultBuffer = 256

// LineStats holds line counts for one file or one aggregate bucket.
type LineStats struct {
	// Code is the number of non-empty lines.
	Code int64
	// Empty is the number of lines left blank after trimming whitespace.
	Empty int64
}

// Add accumulates other into s. Addition is commutative and associative, so
// partial results merge to the same totals in any order or grouping.
func (s *LineStats) Add(other LineStats) {
	s.Code += other.Code
	s.Empty += other.Empty
}

// Total returns the total number of lines.
func (s LineStats) Total() int64 {
	return s.Code + s.Empty
}

// PercentEmpty returns the share of empty lines in percent, 0 for a bucket
// with no lines.
func (s LineStats) PercentEmpty() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}

	return 100 * float64(s.Empty) / float64(total)
}

// Report holds aggregate line statistics for a directory walk.
type Report struct {
	// PerType indicates whether Types is keyed by extension or holds the
	// single KeyAll bucket.
	PerType bool
	// Types maps type keys to their line statistics.
	Types map[string]LineStats
	// Files is the number of files counted.
	Files int64
	// Bytes is the cumulative size of all counted files.
	Bytes int64
	// Skipped is the number of entries skipped due to read or decode errors.
	Skipped int64
	// Elapsed is the total time taken for the walk.
	Elapsed time.Duration
}

// Keys returns the type keys in ascending order.
func (r *Report) Keys() []string {
	keys := make([]string, 0, len(r.Types))
	for key := range r.Types {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Total folds every bucket into a single LineStats.
func (r *Report) Total() LineStats {
	var total LineStats
	for _, stats := range r.Types {
		total.Add(stats)
	}

	return total
}

// Options configures a counting run and CLI behavior.
type Options struct {
	// Path is the root directory to count.
	Path string
	// PerType indicates whether to break statistics down by file extension.
	PerType bool
	// Threads is the number of walk workers (0 = one per CPU).
	Threads int
	// Extensions holds file suffixes to include ('!' prefix excludes).
	Extensions []string
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// Depth is the maximum traversal depth (0 = unlimited).
	Depth int
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether per-file diagnostics are enabled.
	Debug bool
	// Summary indicates whether to print the run summary.
	Summary bool
}

// fileResult is the per-file unit of work handed from walk workers to the
// reducer.
type fileResult struct {
	key   string
	stats LineStats
}

// collector folds per-file results into a Report. Walk callbacks run on
// multiple goroutines and send over a buffered channel; a single reducer
// goroutine owns the aggregate map, so no lock guards the hot path.
type collector struct {
	perType bool
	results chan fileResult
	done    chan struct{}
	types   map[string]LineStats

	// Progress counters, sampled by the progress reporter during the walk.
	fileCount  atomic.Int64
	totalBytes atomic.Int64
	skipped    atomic.Int64
}

// newCollector creates a collector and starts its reducer goroutine.
func newCollector(perType bool) *collector {
	c := &collector{
		perType: perType,
		results: make(chan fileResult, resultBuffer),
		done:    make(chan struct{}),
		types:   make(map[string]LineStats),
	}

	go c.reduce()

	return c
}

// reduce is the only goroutine that touches c.types.
func (c *collector) reduce() {
	defer close(c.done)

	for res := range c.results {
		stats := c.types[res.key]
		stats.Add(res.stats)
		c.types[res.key] = stats
	}
}

// add records one counted file. Safe to call from multiple goroutines.
func (c *collector) add(key string, stats LineStats, size int64) {
	c.fileCount.Add(1)
	c.totalBytes.Add(size)
	c.results <- fileResult{key: key, stats: stats}
}

// addSkipped records an entry that could not be read or decoded.
func (c *collector) addSkipped() {
	c.skipped.Add(1)
}

// progress returns the running file and byte counts.
func (c *collector) progress() (files, bytes int64) {
	return c.fileCount.Load(), c.totalBytes.Load()
}

// finalize closes the result stream, waits for the reducer to drain it, and
// produces the final Report. The collector must not be used afterwards.
func (c *collector) finalize() *Report {
	close(c.results)
	<-c.done

	if !c.perType {
		// Combined mode reports the aggregate bucket even for an empty tree.
		if _, ok := c.types[KeyAll]; !ok {
			c.types[KeyAll] = LineStats{}
		}
	}

	return &Report{
		PerType: c.perType,
		Types:   c.types,
		Files:   c.fileCount.Load(),
		Bytes:   c.totalBytes.Load(),
		Skipped: c.skipped.Load(),
	}
}
