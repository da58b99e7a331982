package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdwhite/blogctl/internal/config"
	"github.com/jdwhite/blogctl/internal/model"
	"github.com/jdwhite/blogctl/internal/store"
)

func setupEnv(t *testing.T) (*store.Store, string) {
	t.Helper()
	dir := t.TempDir()
	blogDir = dir
	st = store.New(dir, config.DefaultContentDir)
	cfg, _ = config.Load(dir)
	return st, dir
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// Tests exercise commands through Cobra and verify results via the store,
// matching how an operator observes the content directory.

func TestNew_CreatesDraft(t *testing.T) {
	s, _ := setupEnv(t)
	require.NoError(t, run(t, "new", "Optimizing CI Builds"))

	posts, err := s.List()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Optimizing CI Builds", posts[0].Title)
	assert.True(t, posts[0].Draft)
}

func TestNew_DuplicateFails(t *testing.T) {
	setupEnv(t)
	require.NoError(t, run(t, "new", "My Post"))
	assert.Error(t, run(t, "new", "My Post"))
}

func TestList_Empty(t *testing.T) {
	setupEnv(t)
	require.NoError(t, run(t, "list"))
}

func TestShow_NotFound(t *testing.T) {
	setupEnv(t)
	assert.Error(t, run(t, "show", "missing-post"))
}

func TestPublish_Force(t *testing.T) {
	s, _ := setupEnv(t)
	_, err := s.Create("Draft Post", "Body.")
	require.NoError(t, err)

	require.NoError(t, run(t, "publish", "draft-post", "--force"))

	p, _, err := s.Get("draft-post")
	require.NoError(t, err)
	assert.False(t, p.Draft)
}

func TestPublish_NotFound(t *testing.T) {
	setupEnv(t)
	assert.Error(t, run(t, "publish", "missing-post", "--force"))
}

func TestCheck_CleanCorpus(t *testing.T) {
	s, _ := setupEnv(t)
	p := &model.Post{Title: "Valid", Slug: "valid", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.Write(p, "prose"))

	require.NoError(t, run(t, "check"))
}

func TestCheck_FailsOnMalformedHeader(t *testing.T) {
	s, _ := setupEnv(t)
	require.NoError(t, os.MkdirAll(s.Dir(), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "bad.md"), []byte("+++\ntitle = broken\n+++\n"), 0644))

	assert.Error(t, run(t, "check"))
}

func TestCheck_StrictFailsOnWarnings(t *testing.T) {
	s, _ := setupEnv(t)
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Write(&model.Post{Title: "Same", Slug: "one", Date: date}, ""))
	require.NoError(t, s.Write(&model.Post{Title: "Same", Slug: "two", Date: date}, ""))

	require.NoError(t, run(t, "check"))
	assert.Error(t, run(t, "check", "--strict"))
}

func TestBuild_UsesConfiguredGenerator(t *testing.T) {
	_, dir := setupEnv(t)

	gen := filepath.Join(t.TempDir(), "fake-generator")
	require.NoError(t, os.WriteFile(gen, []byte("#!/bin/sh\nprintf '%s ' \"$@\" > args.txt\n"), 0755))
	require.NoError(t, config.Save(dir, &config.Config{Generator: gen}))

	require.NoError(t, run(t, "build", "--drafts"))

	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "-D")
}

func TestLint_UsesConfiguredRuntime(t *testing.T) {
	_, dir := setupEnv(t)

	rt := filepath.Join(t.TempDir(), "fake-runtime")
	require.NoError(t, os.WriteFile(rt, []byte("#!/bin/sh\nexit 0\n"), 0755))
	require.NoError(t, config.Save(dir, &config.Config{ContainerRuntime: rt}))

	require.NoError(t, run(t, "lint"))
}

func TestLint_FailsOnViolations(t *testing.T) {
	_, dir := setupEnv(t)

	rt := filepath.Join(t.TempDir(), "fake-runtime")
	require.NoError(t, os.WriteFile(rt, []byte("#!/bin/sh\nexit 1\n"), 0755))
	require.NoError(t, config.Save(dir, &config.Config{ContainerRuntime: rt}))

	assert.Error(t, run(t, "lint"))
}

func TestSearch_FindsPost(t *testing.T) {
	s, _ := setupEnv(t)
	_, err := s.Create("Database Migration Tooling", "")
	require.NoError(t, err)

	require.NoError(t, run(t, "search", "migration"))
}
