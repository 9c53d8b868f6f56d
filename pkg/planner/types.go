// Package planner is the batch-planning core: it groups sidecar files by basename, resolves
// one authoritative capture time per group and lays out a collision-free copy plan. Every
// stage is a pure transformation; the only I/O is the read-only metadata probing done by
// the resolver through its injected capabilities.
package planner

import (
	"fmt"
	"time"

	"github.com/pcameron/photodater/pkg/utils"
)

/**************************************************************************************************
** ExtSet is the set of extensions observed for one basename. Extensions keep their leading
** dot (".jpg"). The set itself is unordered; Sorted provides the canonical order used
** wherever iteration is observable.
**************************************************************************************************/
type ExtSet map[string]struct{}

// Add records an extension. Duplicates collapse.
func (s ExtSet) Add(ext string) {
	s[ext] = struct{}{}
}

// Has reports whether the set contains ext.
func (s ExtSet) Has(ext string) bool {
	_, ok := s[ext]
	return ok
}

// Sorted returns the extensions in ascending lexicographic order.
func (s ExtSet) Sorted() []string {
	return utils.SortedKeys(s)
}

/**************************************************************************************************
** FileGroups maps each distinct basename to its extension set. The basename is the full
** path minus the extension, so it doubles as the source-path prefix when operations are
** generated. An empty set means the basename only ever appeared without an extension.
**************************************************************************************************/
type FileGroups map[string]ExtSet

/**************************************************************************************************
** CaptureTimes maps basenames to their resolved capture time. Groups for which no valid
** time could be determined are absent, which is what excludes them from all later stages.
**************************************************************************************************/
type CaptureTimes map[string]time.Time

/**************************************************************************************************
** Bucket is the ordered list of basenames that resolved to the same destination directory
** and filename stem. Position in Basenames decides the sequence letter: index 0 gets 'A',
** index 1 gets 'B' and so on.
**************************************************************************************************/
type Bucket struct {
	Dir       string   // Destination directory
	Stem      string   // Time-derived filename stem, prefix included
	Basenames []string // Members in ascending basename order
}

/**************************************************************************************************
** Plan is the complete, immutable result of planning. Buckets are keyed by the joined
** destination path (dir/stem) and Groups carries the extension sets needed to expand each
** basename into concrete operations.
**************************************************************************************************/
type Plan struct {
	Buckets map[string]Bucket
	Groups  FileGroups
}

/**************************************************************************************************
** MoveOp is one planned copy: a source file and its full destination path.
**************************************************************************************************/
type MoveOp struct {
	From string
	To   string
}

/**************************************************************************************************
** SequenceOverflowError reports a bucket with more members than sequence letters. The plan
** is rejected as a whole rather than wrapping or truncating the sequence.
**************************************************************************************************/
type SequenceOverflowError struct {
	Dir   string
	Stem  string
	Count int
}

func (e *SequenceOverflowError) Error() string {
	return fmt.Sprintf("too many files resolve to %s/%s: %d exceed the %d-letter sequence",
		e.Dir, e.Stem, e.Count, len(utils.SequenceLetters))
}
