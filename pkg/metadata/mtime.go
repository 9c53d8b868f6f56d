package metadata

import (
	"os"
	"time"
)

/**************************************************************************************************
** ModTimer is the filesystem-modification-time capability keyed by file path. It is a plain
** function type so tests can inject a fixed clock per path.
**************************************************************************************************/
type ModTimer func(path string) (time.Time, error)

/**************************************************************************************************
** FSModTime reads the last-modification time of a local file.
**
** @param path - File to stat
** @return time.Time - Modification time
** @return error - Any error from the stat call
**************************************************************************************************/
func FSModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
