package planner

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pcameron/photodater/pkg/utils"
)

/**************************************************************************************************
** Options configures how destinations are derived. Prefix and DefaultEvent are trimmed
** before use, so whitespace-only values behave like empty ones.
**************************************************************************************************/
type Options struct {
	OutputRoot   string // Root under which dated directories are created
	Prefix       string // Optional stem prefix, e.g. photographer initials
	DefaultEvent string // Optional event suffix appended to directory names
}

/**************************************************************************************************
** OutputDir computes the dated destination directory for a capture time:
** root/YYYY.MM.DD, with ".event" appended when an event suffix is configured.
**
** @param t - Capture time of the group
** @return string - Full destination directory path
**************************************************************************************************/
func (o Options) OutputDir(t time.Time) string {
	name := t.Format(utils.DirDateLayout)
	if event := strings.TrimSpace(o.DefaultEvent); event != "" {
		name += "." + event
	}
	return filepath.Join(o.OutputRoot, name)
}

/**************************************************************************************************
** Stem computes the time-derived filename stem: trimmed prefix followed by the capture
** time at second resolution.
**
** @param t - Capture time of the group
** @return string - Filename stem without sequence letter or extension
**************************************************************************************************/
func (o Options) Stem(t time.Time) string {
	return strings.TrimSpace(o.Prefix) + t.Format(utils.StemTimeLayout)
}

/**************************************************************************************************
** BuildPlan maps every resolved group to its (directory, stem) bucket and fixes the
** sequence order. Groups absent from times never enter the plan. Within a bucket the
** basenames are sorted ascending so files captured in the same second keep their relative
** order; a bucket with more members than sequence letters rejects the whole plan.
**
** @param groups - All file groups from the grouper
** @param times - Resolved capture time per surviving basename
** @param opts - Destination derivation options
** @return *Plan - The complete plan
** @return error - A *SequenceOverflowError when any bucket exceeds the letter alphabet
**************************************************************************************************/
func BuildPlan(groups FileGroups, times CaptureTimes, opts Options) (*Plan, error) {
	buckets := make(map[string]Bucket)

	for basename, t := range times {
		dir := opts.OutputDir(t)
		stem := opts.Stem(t)
		key := filepath.Join(dir, stem)

		b, ok := buckets[key]
		if !ok {
			b = Bucket{Dir: dir, Stem: stem}
		}
		b.Basenames = append(b.Basenames, basename)
		buckets[key] = b
	}

	for key, b := range buckets {
		sort.Strings(b.Basenames)
		if len(b.Basenames) > len(utils.SequenceLetters) {
			return nil, &SequenceOverflowError{Dir: b.Dir, Stem: b.Stem, Count: len(b.Basenames)}
		}
		buckets[key] = b
	}

	return &Plan{Buckets: buckets, Groups: groups}, nil
}

/**************************************************************************************************
** OutputDirs returns the distinct destination directories the plan needs, ascending. This
** is the input for the directory-creation collaborator, which must no-op on directories
** that already exist.
**
** @return []string - Distinct destination directories in ascending order
**************************************************************************************************/
func (p *Plan) OutputDirs() []string {
	seen := make(map[string]struct{}, len(p.Buckets))
	for _, b := range p.Buckets {
		seen[b.Dir] = struct{}{}
	}
	return utils.SortedKeys(seen)
}
