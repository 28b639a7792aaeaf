// Package treefill builds synthetic directory trees and scatters
// zero-filled placeholder files across them to load a filesystem.
//
// A tree of a given depth and width is created under a root directory,
// then files are written one at a time at randomly chosen levels with
// a random pause between writes. Census walks the result using fastwalk
// and reports per-level directory counts.
package treefill
