package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "reelshelf", "config.toml")

	require.NoError(t, WriteDefault(path), "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	assert.Contains(t, string(content), "[server]")
	assert.Contains(t, string(content), "[catalog]")
	assert.Contains(t, string(content), "${REELSHELF_HOST:-0.0.0.0}")
}

func TestWriteDefault_Loads(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err, "the shipped default config must be valid")
	assert.Equal(t, 8585, cfg.Server.Port)
	assert.True(t, cfg.Catalog.IsStrict())
	assert.True(t, cfg.Catalog.UseDefaultSeed())
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "deep", "config.toml")

	require.NoError(t, WriteDefault(path), "WriteDefault failed")

	_, err := os.Stat(path)
	assert.False(t, os.IsNotExist(err), "file was not created")
}

func TestConfig_Write(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 9000},
		Catalog: CatalogConfig{
			Seed: []SeedEntry{{Title: "Written", Type: "movie", Year: 2001}},
		},
	}

	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	require.NoError(t, cfg.Write(path), "Write failed")

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", reloaded.Server.Host)
	assert.Equal(t, 9000, reloaded.Server.Port)
	require.Len(t, reloaded.Catalog.Seed, 1)
	assert.Equal(t, "Written", reloaded.Catalog.Seed[0].Title)
}
