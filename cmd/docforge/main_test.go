// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docforge/internal/config"
)

func TestRunRootInvalidConfigCreatesNoOutput(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"name": `), 0o644))
	outDir := filepath.Join(dir, "out")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", outDir, "--no-manifest"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)

	// The config must fail before the output root is created.
	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "output directory must not exist after a config failure")
}
