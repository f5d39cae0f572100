// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dir
}

func sampleRun() (Run, []PageRecord) {
	run := Run{
		ConfigName: "Tailwind CSS",
		ConfigPath: "configs/tailwind.json",
		OutputDir:  "output/tailwind",
		Sections:   2,
		Pages:      3,
		StartedAt:  "2026-08-23T10:00:00Z",
		FinishedAt: "2026-08-23T10:00:01Z",
	}
	pages := []PageRecord{
		{Category: "Getting Started", Slug: "installation", Title: "Installation", URL: "/docs/installation", Path: "getting-started/installation.md"},
		{Category: "Getting Started", Slug: "editor-setup", Title: "Editor Setup", URL: "/docs/editor-setup", Path: "getting-started/editor-setup.md"},
		{Category: "Core Concepts", Slug: "utility-classes", Title: "Utility Classes", URL: "/docs/utilities", Path: "core-concepts/utility-classes.md"},
	}
	return run, pages
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, Exists(dir))

	// The check itself must not create anything.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "Exists must not mutate the output directory")

	store, err := Open(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.True(t, Exists(dir))
}

func TestOpenCreatesDatabase(t *testing.T) {
	_, dir := openStore(t)

	if _, err := os.Stat(filepath.Join(dir, ".docforge", "manifest.db")); err != nil {
		t.Errorf("manifest database not created: %v", err)
	}
}

func TestRecordAndRecent(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	run, pages := sampleRun()
	runID, err := store.Record(ctx, run, pages)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	runs, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "Tailwind CSS", runs[0].ConfigName)
	assert.Equal(t, 3, runs[0].Pages)
	assert.Equal(t, 2, runs[0].Sections)

	got, err := store.PagesForRun(ctx, runID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, pages, got)
}

func TestRecentOrderAndLimit(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	run, _ := sampleRun()
	for i := 0; i < 3; i++ {
		_, err := store.Record(ctx, run, nil)
		require.NoError(t, err)
	}

	runs, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Newest first.
	assert.Greater(t, runs[0].ID, runs[1].ID)
}

func TestReopenKeepsRuns(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir)
	require.NoError(t, err)
	run, pages := sampleRun()
	_, err = store.Record(ctx, run, pages)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
