package planner

import (
	"time"

	"github.com/pcameron/photodater/pkg/metadata"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** Resolver derives one authoritative capture time per file group. It reads embedded
** metadata through the injected Reader, falls back to the modification-time capability,
** and discards anything at or before MinCaptureTime. All reads are read-only and failures
** never abort a group, let alone the run.
**************************************************************************************************/
type Resolver struct {
	Metadata       metadata.Reader
	ModTime        metadata.ModTimer
	MinCaptureTime time.Time
	Logger         *logrus.Logger
}

/**************************************************************************************************
** fileTime derives the candidate timestamp for one file: embedded capture time when
** present, modification time otherwise. An unreadable file is logged and still falls
** through to the modification-time probe.
**
** @param path - File to read
** @return time.Time - Candidate timestamp
** @return bool - False when neither source yielded a timestamp
**************************************************************************************************/
func (r *Resolver) fileTime(path string) (time.Time, bool) {
	res := r.Metadata.CaptureTime(path)
	switch res.Status {
	case metadata.Found:
		return res.Time, true
	case metadata.Unreadable:
		r.Logger.WithError(res.Err).Warnf("Could not read metadata from %s, falling back to modification time", path)
	}

	mtime, err := r.ModTime(path)
	if err != nil {
		r.Logger.WithError(err).Warnf("Could not read modification time of %s", path)
		return time.Time{}, false
	}
	return mtime, true
}

/**************************************************************************************************
** Resolve determines the capture time for one group. Each extension contributes one
** candidate; candidates at or before the threshold are discarded and the earliest survivor
** wins. A group with no survivors (including the zero-extension case) resolves to none.
**
** @param basename - Group key, also the source-path prefix
** @param exts - Extensions present for this basename
** @return time.Time - Resolved capture time
** @return bool - False when no valid capture time exists
**************************************************************************************************/
func (r *Resolver) Resolve(basename string, exts ExtSet) (time.Time, bool) {
	var candidates []time.Time
	for _, ext := range exts.Sorted() {
		t, ok := r.fileTime(basename + ext)
		if ok && t.After(r.MinCaptureTime) {
			candidates = append(candidates, t)
		}
	}

	if len(candidates) == 0 {
		return time.Time{}, false
	}
	earliest := candidates[0]
	for _, t := range candidates[1:] {
		if t.Before(earliest) {
			earliest = t
		}
	}
	return earliest, true
}

/**************************************************************************************************
** ResolveAll resolves every group and drops the ones without a valid capture time. Dropped
** groups are counted and reported once at warn level so a run over a directory full of
** stale files does not pass silently.
**
** @param groups - All file groups from the grouper
** @return CaptureTimes - Capture time per surviving basename
**************************************************************************************************/
func (r *Resolver) ResolveAll(groups FileGroups) CaptureTimes {
	times := make(CaptureTimes, len(groups))
	dropped := 0

	for basename, exts := range groups {
		t, ok := r.Resolve(basename, exts)
		if !ok {
			r.Logger.Debugf("No valid capture time for %s, excluding from plan", basename)
			dropped++
			continue
		}
		times[basename] = t
	}

	if dropped > 0 {
		r.Logger.Warnf("Excluded %d group(s) without a valid capture time", dropped)
	}
	return times
}
