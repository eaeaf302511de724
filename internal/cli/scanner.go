package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirectoryScanner expands directory arguments into the set of Go source
// files to check. Supports Go-style "./..." patterns for recursive
// scanning.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves the provided directory arguments and returns
// every non-test Go file under them
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	collect := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, rootDir := range rootDirs {
		recursive := false
		dir := rootDir
		if strings.HasSuffix(dir, "/...") {
			recursive = true
			dir = strings.TrimSuffix(dir, "/...")
			if dir == "" {
				dir = "."
			}
		}

		cleanDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}

		info, err := os.Stat(cleanDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}

		if recursive {
			err = filepath.WalkDir(cleanDir, func(path string, d fs.DirEntry, walkErr error) error {
				if walkErr != nil {
					return walkErr
				}
				if d.IsDir() {
					if skipDir(d.Name()) && path != cleanDir {
						return filepath.SkipDir
					}
					return nil
				}
				if isCheckableGoFile(path) {
					collect(path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
			}
		} else {
			entries, err := os.ReadDir(cleanDir)
			if err != nil {
				return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				path := filepath.Join(cleanDir, entry.Name())
				if isCheckableGoFile(path) {
					collect(path)
				}
			}
		}
	}

	return files, nil
}

func skipDir(name string) bool {
	return name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isCheckableGoFile(path string) bool {
	name := filepath.Base(path)
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}
