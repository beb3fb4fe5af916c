// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 100, cfg.History.MaxEntries)
	assert.Equal(t, 10, cfg.History.ListLimit)
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.Equal(t, "auto", cfg.UI.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
data_dir = "/tmp/sidekick-data"
prompt = ">> "

[history]
max_entries = 50
list_limit = 5

[ui]
color = "never"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Default()
	require.NoError(t, LoadFromPath(cfg, path))
	cfg.SetDefaults()

	assert.Equal(t, "/tmp/sidekick-data", cfg.DataDir)
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, 50, cfg.History.MaxEntries)
	assert.Equal(t, 5, cfg.History.ListLimit)
	// Unset fields fall back to defaults
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.Equal(t, "never", cfg.UI.Color)
}

func TestLoadFromPathMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is { not toml"), 0644))

	cfg := Default()
	assert.Error(t, LoadFromPath(cfg, path))
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Prompt = "sk> "
	cfg.History.MaxEntries = 42
	require.NoError(t, SaveTOML(cfg, path))

	loaded := Default()
	require.NoError(t, LoadFromPath(loaded, path))

	assert.Equal(t, "sk> ", loaded.Prompt)
	assert.Equal(t, 42, loaded.History.MaxEntries)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.History.MaxEntries = -1
	cfg.UI.Color = "rainbow"

	err := cfg.Validate()
	require.Error(t, err)

	errs, ok := err.(ValidateErrors)
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SIDEKICK_DATA_DIR", "/custom/data")
	t.Setenv("SIDEKICK_HISTORY_LIMIT", "250")
	t.Setenv("SIDEKICK_NO_COLOR", "1")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/custom/data", cfg.DataDir)
	assert.Equal(t, 250, cfg.History.MaxEntries)
	assert.Equal(t, "never", cfg.UI.Color)
}

func TestApplyEnvOverridesIgnoresBadLimit(t *testing.T) {
	t.Setenv("SIDEKICK_HISTORY_LIMIT", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, 100, cfg.History.MaxEntries)
}

func TestResolveDataDir(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.DataDir = filepath.Join(dir, "data")

	resolved, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, cfg.DataDir, resolved)

	info, err := os.Stat(resolved)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
