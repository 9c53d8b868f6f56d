/**************************************************************************************************
** Importer command implementation for the photodater CLI. Wires the planning pipeline
** together and hands the finished plan to the executor: list input files, group by
** basename, resolve capture times, build the plan, create directories, copy.
**************************************************************************************************/

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pcameron/photodater/pkg/executor"
	"github.com/pcameron/photodater/pkg/metadata"
	"github.com/pcameron/photodater/pkg/planner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** listInputFiles lists the regular files of the input directory, non-recursive.
** Subdirectories and anything that is not a plain file are skipped. An unreadable input
** directory is the one structural failure that aborts the run.
**
** @param dir - Input directory
** @return []string - Full paths of the regular files found
** @return error - Failure reading the directory
**************************************************************************************************/
func listInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

/**************************************************************************************************
** buildPlan runs the full planning pipeline over the configured input directory. The
** resolver gets the real EXIF and mtime probes; everything after the listing is a pure
** in-memory transformation, so the plan is complete before any side effect starts.
**
** @param logger - Logger injected into the resolver
** @return *planner.Plan - The finished plan
** @return error - Structural failures and sequence overflow
**************************************************************************************************/
func buildPlan(logger *logrus.Logger) (*planner.Plan, error) {
	files, err := listInputFiles(inputDir)
	if err != nil {
		return nil, err
	}

	groups := planner.GroupFiles(files)
	logger.Infof("Found %d file(s) in %d group(s) in %s", len(files), len(groups), inputDir)

	resolver := &planner.Resolver{
		Metadata:       metadata.ExifReader{},
		ModTime:        metadata.FSModTime,
		MinCaptureTime: parseMinCaptureTime(logger),
		Logger:         logger,
	}
	times := resolver.ResolveAll(groups)

	return planner.BuildPlan(groups, times, planner.Options{
		OutputRoot:   outputDir,
		Prefix:       prefix,
		DefaultEvent: defaultEvent,
	})
}

/**************************************************************************************************
** Main execution logic for the importer. Builds the plan and executes it, honoring
** pretend mode.
**
** @param cmd - Cobra command instance
** @param args - Command line arguments
**************************************************************************************************/
func runImporter(cmd *cobra.Command, args []string) {
	logger := loadEnv()

	plan, err := buildPlan(logger)
	if err != nil {
		logger.Fatalf("Planning failed: %v", err)
	}
	logger.Infof("Planned %d copy operation(s) into %d director(ies)", plan.CountOperations(), len(plan.OutputDirs()))

	exec := &executor.Executor{Pretend: pretend, Logger: logger}
	if err := exec.Run(plan); err != nil {
		logger.Fatalf("Import failed: %v", err)
	}
	logger.Info("Done")
}
