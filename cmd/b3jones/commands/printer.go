package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/b3jones/enumerate"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
	cyan  = color.New(color.FgCyan)
)

// printSummary writes the run statistics.
func printSummary(w io.Writer, s enumerate.Summary) {
	cyan.Fprintf(w, "Braids per length:\n")
	for n, c := range s.PerLength {
		fmt.Fprintf(w, "  %3d  %d\n", n, c)
	}
	green.Fprintf(w, "Total braids: %d\n", s.Total)
	green.Fprintf(w, "Last zero-index change braid len: %d\n", s.LastNonZeroConstantLen)
}

// printRecord writes one (word, Jones) pair.
func printRecord(w io.Writer, r enumerate.Record) {
	fmt.Fprintf(w, "%s\t%s\n", r.Word, r.Jones)
}

// printError writes err in red.
func printError(w io.Writer, err error) {
	red.Fprintf(w, "Error: %v\n", err)
}
