// Package metadata reads capture timestamps out of local files. The resolver consumes these
// capabilities to find the best-known timestamp per file: embedded EXIF first, filesystem
// modification time as the fallback.
package metadata

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

/**************************************************************************************************
** ExifTimeLayout matches the encoding of EXIF date tags.
**************************************************************************************************/
const ExifTimeLayout = "2006:01:02 15:04:05"

/**************************************************************************************************
** Status classifies the outcome of a capture-time probe. The three cases are deliberately
** distinct so callers handle them exhaustively: a file without an EXIF block is normal for
** sidecars, while an unreadable file is worth a log line before falling back.
**************************************************************************************************/
type Status int

const (
	Found      Status = iota // Embedded capture time was read successfully
	NotFound                 // File is readable but carries no capture time
	Unreadable               // File could not be opened at all
)

/**************************************************************************************************
** Result is the outcome of probing one file. Time is only meaningful when Status is Found;
** Err is only set when Status is Unreadable.
**************************************************************************************************/
type Result struct {
	Status Status
	Time   time.Time
	Err    error
}

/**************************************************************************************************
** Reader is the embedded-metadata capability keyed by file path. Injected into the resolver
** so tests can substitute a fixture-backed implementation.
**************************************************************************************************/
type Reader interface {
	CaptureTime(path string) Result
}

/**************************************************************************************************
** ExifReader reads the EXIF date of local files. Only the plain DateTime tag
** ("Image DateTime") is consulted; DateTimeOriginal is deliberately ignored so edited
** photos keep the timestamp the rest of the pipeline documents.
**************************************************************************************************/
type ExifReader struct{}

/**************************************************************************************************
** CaptureTime probes one file for an embedded capture time.
**
** @param path - File to probe
** @return Result - Found with the decoded time, NotFound when the file has no usable EXIF
**                  date, or Unreadable when the file cannot be opened
**************************************************************************************************/
func (ExifReader) CaptureTime(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Status: Unreadable, Err: err}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// Sidecars and non-image files land here: readable, but no EXIF block.
		return Result{Status: NotFound}
	}

	if t, ok := dateTag(x, exif.DateTime); ok {
		return Result{Status: Found, Time: t}
	}
	return Result{Status: NotFound}
}

/**************************************************************************************************
** dateTag reads one EXIF date field and parses its "YYYY:MM:DD HH:MM:SS" encoding in local
** time. A missing or malformed field simply reports no value.
**
** @param x - Decoded EXIF block
** @param field - Date field to read
** @return time.Time - Parsed timestamp
** @return bool - False when the field is absent or unparseable
**************************************************************************************************/
func dateTag(x *exif.Exif, field exif.FieldName) (time.Time, bool) {
	tag, err := x.Get(field)
	if err != nil {
		return time.Time{}, false
	}
	value, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(ExifTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
