package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	gomod := "module github.com/example/app\n\ngo 1.25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.go"), []byte(source), 0644))
	return dir
}

func TestRun_CleanProject(t *testing.T) {
	dir := writeProject(t, `package app

type SearchRequest struct {
	Page int    `+"`bind:\"query,name=page\"`"+`
	ID   string `+"`bind:\"route,name=id\"`"+`
}
`)

	code := run([]string{dir}, false, false)
	assert.Equal(t, 0, code)
}

func TestRun_InvalidTag(t *testing.T) {
	dir := writeProject(t, `package app

type SearchRequest struct {
	Page int `+"`bind:\"querystring\"`"+`
}
`)

	code := run([]string{dir}, false, false)
	assert.Equal(t, 1, code)
}

func TestRun_RecursivePattern(t *testing.T) {
	dir := writeProject(t, `package app

type Ok struct {
	Trace string `+"`bind:\"header,name=X-Trace-Id\"`"+`
}
`)
	nested := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "more.go"), []byte(`package sub

type Bad struct {
	V string `+"`bind:\"custom\"`"+`
}
`), 0644))

	code := run([]string{dir + "/..."}, false, false)
	assert.Equal(t, 1, code)
}

func TestRun_MissingDirectory(t *testing.T) {
	code := run([]string{"/nonexistent/dendrite/dir"}, false, false)
	assert.Equal(t, 1, code)
}

func TestRun_EmptyDirectory(t *testing.T) {
	code := run([]string{t.TempDir()}, false, false)
	assert.Equal(t, 0, code)
}
