package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeConfig(t, `
scylla:
  nodes: ["10.0.0.1", "10.0.0.2"]
  keyspace: Firefish
  replicationFactor: 3
  credentials:
    username: scylla
    password: secret
db:
  host: localhost
  port: 5432
  db: firefish
  user: firefish
  pass: hunter2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.Scylla.Nodes)
	assert.Equal(t, "Firefish", cfg.Scylla.Keyspace)
	assert.Equal(t, int32(3), cfg.Scylla.ReplicationFactor)
	assert.Equal(t, "scylla", cfg.Scylla.Credentials.Username)
	assert.Equal(t, "firefish", cfg.DB.DB)
}

func TestLoadMissingScyllaIsFatal(t *testing.T) {
	path := writeConfig(t, `
db:
  host: localhost
  port: 5432
  db: firefish
  user: firefish
  pass: hunter2
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadWithoutCredentials(t *testing.T) {
	path := writeConfig(t, `
scylla:
  nodes: ["10.0.0.1"]
  keyspace: Firefish
db:
  host: localhost
  port: 5432
  db: firefish
  user: firefish
  pass: hunter2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Scylla.Credentials)
}
