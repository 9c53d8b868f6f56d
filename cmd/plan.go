/**************************************************************************************************
** Plan command implementation for the photodater CLI. Report-only: builds the complete
** plan and prints every directory and copy operation without touching the filesystem.
**************************************************************************************************/

package main

import (
	"fmt"

	"github.com/pcameron/photodater/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Main execution logic for the plan command. Prints the directories the plan needs and
** the full operation listing in the plan's deterministic order.
**
** @param cmd - Cobra command instance
** @param args - Command line arguments
**************************************************************************************************/
func runPlan(cmd *cobra.Command, args []string) {
	logger := loadEnv()

	plan, err := buildPlan(logger)
	if err != nil {
		logger.Fatalf("Planning failed: %v", err)
	}

	dirs := plan.OutputDirs()
	utils.Heading(fmt.Sprintf("%d director(ies) to create:", len(dirs)))
	for _, dir := range dirs {
		fmt.Printf("  %s\n", dir)
	}

	utils.Heading(fmt.Sprintf("%d copy operation(s):", plan.CountOperations()))
	for op := range plan.Operations() {
		utils.Operation(op.From, op.To)
	}

	if logger.Level == logrus.DebugLevel {
		utils.Pretty(plan)
	}
}
