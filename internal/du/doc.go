// Package du measures the disk usage of a directory tree.
//
// It crawls the tree depth-first with a single ordered walk, builds an
// in-memory copy of it, and computes per-directory aggregate sizes in which
// every physical object (device and inode pair) is counted once, no matter
// how many hard links point at it. Children of every directory are sorted
// directories first, then by size descending, then by name.
//
// Failures below the root are reported and skipped; only a failure to stat
// the root aborts a run.
package du
