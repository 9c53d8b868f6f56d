/**************************************************************************************************
** Main entry point for the photodater CLI. This tool imports a flat directory of photos
** and their sidecar files into date-named directories with capture-time-derived,
** collision-free filenames.
**************************************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Application entry point. Sets up the CLI command structure using Cobra, including all
** available commands and their associated flags. Handles command execution and error
** reporting.
**************************************************************************************************/
func main() {
	var rootCmd = &cobra.Command{
		Use:   "photodater",
		Short: "Photodater CLI",
		Long:  "Imports a directory of photos into dated directories with dated filenames.",
		Run:   runImporter,
	}

	var planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Show the copy plan without executing it",
		Long:  "Build the full plan for the input directory and print every directory and copy operation without touching the filesystem.",
		Run:   runPlan,
	}

	rootCmd.PersistentFlags().StringVar(&inputDir, "input-dir", "", "Directory to read files from, non-recursive (or set INPUT_DIR env var)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory to place dated directories and files (or set OUTPUT_DIR env var)")
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "", "Prefix placed onto each new filename, such as photographer initials (or set PREFIX env var)")
	rootCmd.PersistentFlags().StringVar(&defaultEvent, "default-event", "", "Event name appended to each dated directory name (or set DEFAULT_EVENT env var)")
	rootCmd.PersistentFlags().BoolVar(&pretend, "pretend", false, "List copy operations without executing them (or set PRETEND=true)")
	rootCmd.PersistentFlags().StringVar(&minCaptureTime, "min-capture-time", "", "Reject capture times at or before this date, YYYY-MM-DD (or set MIN_CAPTURE_TIME env var)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional YAML config file, lowest precedence after flags and env vars")

	rootCmd.AddCommand(planCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
