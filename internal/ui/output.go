package ui

import (
	"fmt"
	"sync/atomic"
)

// Error and warning tallies for the process. Print helpers are called from
// concurrent worker goroutines, so the counters are atomic.
var (
	runErrorCount   atomic.Int64
	runWarningCount atomic.Int64
)

// ErrorCount reports how many error lines have been printed so far.
func ErrorCount() int64 { return runErrorCount.Load() }

// WarningCount reports how many warning lines have been printed so far.
func WarningCount() int64 { return runWarningCount.Load() }

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorGreen, SymbolCheck, ColorReset, msg)
}

// PrintError prints an error message and increments the error counter.
func PrintError(msg string) {
	runErrorCount.Add(1)
	fmt.Printf("%s%s%s %s\n", ColorRed, SymbolCross, ColorReset, msg)
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorBlue, SymbolInfo, ColorReset, msg)
}

// PrintWarning prints a warning message and increments the warning counter.
func PrintWarning(msg string) {
	runWarningCount.Add(1)
	fmt.Printf("%s%s%s %s\n", ColorYellow, SymbolWarning, ColorReset, msg)
}

// PrintMusic prints a music message.
func PrintMusic(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorGreen, SymbolMusic, ColorReset, msg)
}

// PrintDetail prints an indented detail line attached to the previous
// progress line.
func PrintDetail(msg string) {
	fmt.Printf("    %s%s%s %s\n", ColorCyan, SymbolBranch, ColorReset, msg)
}
