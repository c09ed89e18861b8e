package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 4000\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "notedeck.db", cfg.DB.Path)
	assert.False(t, cfg.Search.CaseSensitive)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  host: 0.0.0.0
  port: 8080
db:
  driver: mysql
  host: db.local
  port: 3307
  user: notes
  pass: hunter2
  name: notesdb
search:
  case_sensitive: true
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "db.local", cfg.DB.Host)
	assert.Equal(t, 3307, cfg.DB.Port)
	assert.Equal(t, "notes", cfg.DB.User)
	assert.Equal(t, "hunter2", cfg.DB.Pass)
	assert.Equal(t, "notesdb", cfg.DB.Name)
	assert.True(t, cfg.Search.CaseSensitive)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
