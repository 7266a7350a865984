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

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
addr: ":9090"
database: "/tmp/test.db"
seed:
  customers: "ref/customers.yaml"
  items: "ref/items.yaml"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.Database)
	assert.Equal(t, "ref/customers.yaml", cfg.Seed.Customers)
	assert.Equal(t, "ref/items.yaml", cfg.Seed.Items)
}

func TestLoad_DefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, `addr: ":9090"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, Default().Database, cfg.Database)
	assert.Equal(t, Default().Seed, cfg.Seed)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, `listen: ":9090"`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
