package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DiagnosticReporter prints checker results in a user-friendly format
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
}

// NewDiagnosticReporter creates a reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{out: os.Stderr, verbose: verbose}
}

// NewDiagnosticReporterTo creates a reporter writing to an explicit writer
func NewDiagnosticReporterTo(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{out: out, verbose: verbose}
}

// ReportResult prints the outcome of a checker run
func (r *DiagnosticReporter) ReportResult(module string, result CheckResult) {
	for _, d := range result.Diagnostics {
		red := color.New(color.FgRed, color.Bold)
		red.Fprint(r.out, "x ")
		fmt.Fprintf(r.out, "%s:%d: %s.%s: %s\n", d.File, d.Line, d.Struct, d.Field, d.Message)
	}

	if result.Clean() {
		green := color.New(color.FgGreen, color.Bold)
		green.Fprint(r.out, "ok ")
		fmt.Fprintf(r.out, "%d bind tags valid across %d files\n", result.TagsChecked, result.FilesChecked)
	} else {
		fmt.Fprintf(r.out, "\n%d invalid bind tags (%d checked, %d files)\n",
			len(result.Diagnostics), result.TagsChecked, result.FilesChecked)
	}

	if r.verbose && module != "" {
		fmt.Fprintf(r.out, "module: %s\n", module)
	}
}

// ReportWarning prints a non-fatal warning
func (r *DiagnosticReporter) ReportWarning(message string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError prints a fatal error
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(r.out, "error: ")
	fmt.Fprintf(r.out, "%s\n", err.Error())
}
