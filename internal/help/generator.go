package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/podhmo/calc/internal/metadata"
)

// GenerateHelp returns the operator table shown by the help command.
func GenerateHelp(calcMeta *metadata.CalculatorMetadata) string {
	if calcMeta == nil {
		return "<error>"
	}

	var sb strings.Builder
	generateHelp(&sb, calcMeta)
	return sb.String()
}

func generateHelp(w io.Writer, calcMeta *metadata.CalculatorMetadata) {
	fmt.Fprintf(w, "%s - %s (mode: %s)\n\n", calcMeta.Name, strings.ReplaceAll(calcMeta.Description, "\n", "\n         "), calcMeta.Mode)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  <number> <operator> <number>")
	fmt.Fprintln(w, "  <operator> <number>    (unary operators only)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Operators:")

	// Column widths for alignment
	maxSymbolLen := len("help")
	maxNameLen := 0
	maxHelpLen := 0
	for _, op := range calcMeta.Operators {
		if l := len(op.Symbol); l > maxSymbolLen {
			maxSymbolLen = l
		}
		if l := len(op.CliName); l > maxNameLen {
			maxNameLen = l
		}
		if l := len(helpText(op)); l > maxHelpLen {
			maxHelpLen = l
		}
	}
	if l := len(calcMeta.ExitKeyword); l > maxSymbolLen {
		maxSymbolLen = l
	}

	for _, op := range calcMeta.Operators {
		fmt.Fprintf(w, "  %-*s  %-*s  %-*s", maxSymbolLen, op.Symbol, maxNameLen, op.CliName, maxHelpLen, helpText(op))
		if op.Example != "" {
			fmt.Fprintf(w, "  e.g. %s", op.Example)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", maxSymbolLen, "help", "Show this help message")
	if calcMeta.ExitKeyword != "" {
		fmt.Fprintf(w, "  %-*s  %s\n", maxSymbolLen, calcMeta.ExitKeyword, "Leave the calculator")
	}
}

func helpText(op *metadata.OperatorMetadata) string {
	if op.IsUnary() {
		return op.HelpText + " (unary)"
	}
	return op.HelpText
}
