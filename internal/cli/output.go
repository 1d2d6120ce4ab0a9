package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const tip = "Tip: Open the CSV in Excel or Google Sheets to review sample questions."

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// printSummary reports a successful run on stdout.
func printSummary(w io.Writer, result Result) {
	fmt.Fprintf(w, "%s Wrote %d questions for %d images → %s\n", tag(w, "[OK]", okStyle), result.Rows, result.Images, result.OutputPath)
	if result.DuckDBPath != "" {
		fmt.Fprintf(w, "DuckDB snapshot: %s (run %s)\n", result.DuckDBPath, result.RunID)
	}
	fmt.Fprintln(w, tip)
}

// printError reports a terminal failure.
func printError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", tag(w, "[Error]", errorStyle), message)
}

// tag styles a status label when w is a terminal and leaves it plain otherwise.
func tag(w io.Writer, label string, style lipgloss.Style) string {
	if !isTerminal(w) {
		return label
	}
	return style.Render(label)
}

// defaultIsTerminal inspects the writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
