// Package utils provides shared constants, small helpers and the 'prettier' output used by
// the plan command when listing a dry run.
package utils

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var colorGreen = color.New(color.FgGreen).Add(color.Bold).SprintFunc()
var colorYellow = color.New(color.FgYellow).Add(color.Bold).SprintFunc()
var colorCyan = color.New(color.FgCyan).SprintFunc()
var colorMagenta = color.New(color.FgMagenta).Add(color.Bold).SprintFunc()

// Heading prints a section heading for plan output
func Heading(text string) {
	fmt.Printf("%s\n", colorMagenta(text))
}

// Operation prints a single planned copy with the destination highlighted
func Operation(from, to string) {
	fmt.Printf("  %s %s %s\n", colorCyan(from), colorYellow(`->`), colorGreen(to))
}

// Pretty function disasemble a variable and display it's struct and values
func Pretty(variable ...interface{}) {
	spew.Config.Indent = "    "
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
	for _, each := range variable {
		spew.Dump(each)
	}
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
}
