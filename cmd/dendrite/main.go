package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/dendrite/internal/cli"
)

func main() {
	var (
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only report invalid tags")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Dendrite Bind-Tag Checker\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Go structs with bind tags and validates every directive.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./pkg/models       Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                   # Check everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./internal/... # Check with detailed output\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(args, *verboseFlag, *quietFlag))
}

func run(dirs []string, verbose, quiet bool) int {
	reporter := cli.NewDiagnosticReporter(verbose)

	scanner := cli.NewDirectoryScanner()
	files, err := scanner.ScanDirectories(dirs)
	if err != nil {
		reporter.ReportError(err)
		return 1
	}
	if len(files) == 0 {
		reporter.ReportWarning("no Go files found in the specified directories")
		return 0
	}

	startDir := strings.TrimSuffix(dirs[0], "/...")
	if startDir == "" {
		startDir = "."
	}
	module := ""
	if resolved, err := cli.NewModuleResolver().ResolveModuleName(startDir); err == nil {
		module = resolved
	} else if verbose {
		reporter.ReportWarning(err.Error())
	}

	checker := cli.NewTagChecker()
	result, err := checker.CheckFiles(files)
	if err != nil {
		reporter.ReportError(err)
		return 1
	}

	if !quiet || !result.Clean() {
		reporter.ReportResult(module, result)
	}

	if result.Clean() {
		return 0
	}
	return 1
}
