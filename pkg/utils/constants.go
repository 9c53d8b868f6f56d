package utils

import "time"

/**************************************************************************************************
** Time layouts used across the planner. DirDateLayout names the dated destination
** directories and StemTimeLayout produces the second-resolution filename stems.
**************************************************************************************************/
const DirDateLayout = "2006.01.02"
const StemTimeLayout = "20060102150405"

/**************************************************************************************************
** SequenceLetters is the alphabet used to disambiguate files that resolve to the same
** destination directory and stem. Its length is the hard limit on same-second collisions
** per destination.
**************************************************************************************************/
const SequenceLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

/**************************************************************************************************
** DefaultMinCaptureTime is the default cutoff for capture-time candidates. Timestamps at or
** before it are treated as corrupt metadata (epoch-zero EXIF fields, cameras with a dead
** clock battery) and discarded.
**************************************************************************************************/
var DefaultMinCaptureTime = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.Local)
