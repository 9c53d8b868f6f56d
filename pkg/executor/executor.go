/**************************************************************************************************
** Execution of a finished plan: directory creation and metadata-preserving file copies.
** The planner itself is side-effect free; everything that touches the filesystem for
** writing lives here, behind a pretend switch that reports operations without running
** them.
**************************************************************************************************/

// Package executor carries a plan out against the local filesystem.
package executor

import (
	"fmt"
	"io"
	"os"

	"github.com/pcameron/photodater/pkg/planner"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** Executor performs the side effects of a plan. With Pretend set, every operation is
** logged exactly as it would run but nothing is written.
**************************************************************************************************/
type Executor struct {
	Pretend bool
	Logger  *logrus.Logger
}

/**************************************************************************************************
** MakeOutputDirs creates every destination directory the plan needs, mode 0755. Existing
** directories are left untouched so re-running against a partially populated output root
** is safe.
**
** @param dirs - Distinct destination directories from the plan
** @return error - First directory-creation failure, nil otherwise
**************************************************************************************************/
func (e *Executor) MakeOutputDirs(dirs []string) error {
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err == nil {
			continue
		}
		e.Logger.Infof("Making directory %s", dir)
		if e.Pretend {
			continue
		}
		if err := os.Mkdir(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

/**************************************************************************************************
** CopyFile copies the bytes of from into to, preserving the source's permission bits and
** its access/modification times.
**
** @param from - Source file path
** @param to - Destination file path
** @return error - Any failure opening, copying or restoring times
**************************************************************************************************/
func (e *Executor) CopyFile(from, to string) error {
	e.Logger.Infof("Copying %s to %s", from, to)
	if e.Pretend {
		return nil
	}

	src, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", from, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", from, err)
	}

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", to, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", from, to, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", to, err)
	}

	return os.Chtimes(to, info.ModTime(), info.ModTime())
}

/**************************************************************************************************
** Run executes a complete plan: directories first, then every copy operation in the
** plan's deterministic order. The first failing copy aborts the run; already-copied files
** are left in place, and re-running the same plan simply overwrites them.
**
** @param p - The plan to execute
** @return error - First failure, nil when every operation succeeded
**************************************************************************************************/
func (e *Executor) Run(p *planner.Plan) error {
	if err := e.MakeOutputDirs(p.OutputDirs()); err != nil {
		return err
	}
	for op := range p.Operations() {
		if err := e.CopyFile(op.From, op.To); err != nil {
			return err
		}
	}
	return nil
}
