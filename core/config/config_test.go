package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"worldcraft/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "RECIPES_SOURCE", "RECIPES_ANVIL_MATERIAL", "STORAGE_BUCKET", "LOG_LEVEL")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dir", cfg.Recipes.Source)
	assert.Equal(t, "anvil", cfg.Recipes.AnvilMaterial)
	assert.Equal(t, "recipes", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "RECIPES_SOURCE", "DATABASE_DRIVER")

	dir := t.TempDir()
	env := "SERVER_PORT=9090\nRECIPES_SOURCE=table\nDATABASE_DRIVER=sqlite\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "table", cfg.Recipes.Source)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("RECIPES_DIR", "/srv/recipes")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/recipes", cfg.Recipes.Dir)
	assert.True(t, cfg.Storage.UseSSL)
}
