package lint

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testImage = "ghcr.io/igorshubovych/markdownlint-cli:latest"

func stubRuntime(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-runtime")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return path
}

func TestRun_CleanCorpus(t *testing.T) {
	root := t.TempDir()
	rt := stubRuntime(t, "exit 0")

	var stdout bytes.Buffer
	r := NewRunner(root, rt, testImage)
	r.Stdout = &stdout

	require.NoError(t, r.Run("*.md"))
	assert.Empty(t, stdout.String())
}

func TestRun_ViolationsFound(t *testing.T) {
	root := t.TempDir()
	rt := stubRuntime(t, `echo "README.md:12 MD001/heading-increment Heading levels should only increment by one"; exit 1`)

	var stdout bytes.Buffer
	r := NewRunner(root, rt, testImage)
	r.Stdout = &stdout

	err := r.Run("*.md")
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "README.md")
	assert.Contains(t, stdout.String(), "MD001")
}

func TestRun_MountsRootReadOnly(t *testing.T) {
	root := t.TempDir()
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	rt := stubRuntime(t, `printf '%s ' "$@" > `+argsFile)

	r := NewRunner(root, rt, testImage)
	r.Stdout = &bytes.Buffer{}
	require.NoError(t, r.Run("content/posts/*.md"))

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "run --rm -v "+root+":/workdir:ro")
	assert.Contains(t, string(args), testImage)
	assert.Contains(t, string(args), "content/posts/*.md")
}

func TestRun_RuntimeMissing(t *testing.T) {
	r := NewRunner(t.TempDir(), "definitely-not-a-container-runtime", testImage)
	err := r.Run("*.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
