package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryScanner_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package p\n")
	writeFile(t, dir, "a_test.go", "package p\n")
	writeFile(t, dir, "readme.md", "# readme\n")

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "b.go", "package q\n")

	scanner := NewDirectoryScanner()
	files, err := scanner.ScanDirectories([]string{dir})

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.go", filepath.Base(files[0]))
}

func TestDirectoryScanner_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package p\n")

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "b.go", "package q\n")

	testdata := filepath.Join(dir, "testdata")
	require.NoError(t, os.Mkdir(testdata, 0o755))
	writeFile(t, testdata, "skip.go", "package skip\n")

	scanner := NewDirectoryScanner()
	files, err := scanner.ScanDirectories([]string{dir + "/..."})

	require.NoError(t, err)
	require.Len(t, files, 2)

	names := []string{filepath.Base(files[0]), filepath.Base(files[1])}
	assert.Contains(t, names, "a.go")
	assert.Contains(t, names, "b.go")
}

func TestDirectoryScanner_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package p\n")

	scanner := NewDirectoryScanner()
	files, err := scanner.ScanDirectories([]string{dir, dir + "/..."})

	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDirectoryScanner_MissingDirectory(t *testing.T) {
	scanner := NewDirectoryScanner()
	_, err := scanner.ScanDirectories([]string{"/does/not/exist"})
	assert.Error(t, err)
}

func TestDirectoryScanner_FileArgument(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.go", "package p\n")

	scanner := NewDirectoryScanner()
	_, err := scanner.ScanDirectories([]string{file})
	assert.Error(t, err)
}
