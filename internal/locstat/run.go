package locstat

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output on stderr.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// pathDepth returns the depth of a path relative to the root.
func pathDepth(path, root string) int {
	rel := strings.TrimPrefix(path, root)

	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return 0
	}

	return strings.Count(rel, string(filepath.Separator)) + 1
}

// excludedBy returns the first exclusion regex matching path, if any.
func excludedBy(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// includedBySuffix reports whether a file passes the suffix filters.
// Excludes win over includes; an empty include set admits every file.
func includedBySuffix(path string, include, exclude map[string]struct{}) bool {
	for suffix := range exclude {
		if strings.HasSuffix(path, suffix) {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for suffix := range include {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}

// splitSuffixFilters partitions raw suffix filters into include and exclude
// sets. A '!' prefix marks an exclude; surrounding quotes are stripped.
func splitSuffixFilters(raw []string) (include, exclude map[string]struct{}) {
	include = make(map[string]struct{}, len(raw))
	exclude = make(map[string]struct{}, len(raw))

	for _, s := range raw {
		s = strings.Trim(s, "'\"")
		if s == "" {
			continue
		}

		if strings.HasPrefix(s, "!") {
			exclude[strings.TrimPrefix(s, "!")] = struct{}{}
		} else {
			include[s] = struct{}{}
		}
	}

	return include, exclude
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is
// done.
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
				files, bytes := c.progress()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks the directory tree at opt.Path and aggregates line statistics.
//
// fastwalk calls the walk callback from opt.Threads worker goroutines
// (0 = one per CPU); each callback reads and counts one file and hands the
// result to a single reducer goroutine. The merge is commutative and
// associative, so the report is identical for any worker count or
// visitation order.
//
// Unreadable entries and files that are not valid UTF-8 are counted in
// Report.Skipped and never abort the walk. The walk can be cancelled via
// ctx. Progress updates are sent to progressHook if provided.
//
//nolint:varnamelen // d is standard for DirEntry
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Report, error) {
	log := logger{enabled: opt.Debug}

	// Normalize to native format to handle both unix and windows separators.
	opt.Path = filepath.Clean(opt.Path)

	// Validate the root before any traversal starts.
	if info, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	include, exclude := splitSuffixFilters(opt.Extensions)

	excludeRegexes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	coll := newCollector(opt.PerType)

	// Child context so the progress reporter stops with the walk.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, coll, progressHook, opt.ProgressInterval)

	log.printf("[debug]: walking %s\n", opt.Path)

	for _, re := range excludeRegexes {
		log.printf("[debug]: exclude pattern: %s\n", re.String())
	}

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Threads,
	}

	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: skipping %s: %v\n", path, err)
			coll.addSkipped()

			return nil // Unreadable entries never abort the walk
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if opt.Depth > 0 && pathDepth(path, opt.Path) > opt.Depth {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if re := excludedBy(path, excludeRegexes); re != nil {
			log.printf("[debug]: excluding %s (matched %s)\n", filepath.ToSlash(path), re.String())

			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			return nil
		}

		// Symlinks, devices and the like are not counted.
		if !d.Type().IsRegular() {
			return nil
		}

		if opt.MinSize > 0 {
			info, err := d.Info()
			if err != nil {
				coll.addSkipped()

				return nil //nolint:nilerr // Intentionally skip errors during walk
			}

			if info.Size() < opt.MinSize {
				return nil
			}
		}

		if !includedBySuffix(path, include, exclude) {
			log.printf("[debug]: excluding %s (suffix filter)\n", path)

			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.printf("[debug]: skipping %s: %v\n", path, err)
			coll.addSkipped()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if !utf8.Valid(data) {
			log.printf("[debug]: skipping %s: not valid UTF-8\n", path)
			coll.addSkipped()

			return nil
		}

		key := KeyAll
		if opt.PerType {
			key = TypeKey(path)
		}

		coll.add(key, Count(data), int64(len(data)))

		return nil
	})
	if walkErr != nil {
		// Drain the reducer so no goroutine leaks past the error.
		coll.finalize()

		return nil, walkErr
	}

	report := coll.finalize()

	report.Elapsed = time.Since(start)

	return report, nil
}
