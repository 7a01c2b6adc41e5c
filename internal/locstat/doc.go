// Package locstat provides line-of-code statistics collection for directory
// trees.
//
// It walks directory trees using fastwalk for parallel traversal, counts
// code and empty lines per file, and aggregates the counts by file
// extension or into a single combined bucket.
package locstat
