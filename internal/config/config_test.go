package config

import (
	"go-bikeshare/internal/model"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bikeshare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, 3, cfg.Cache.Size)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	specs, err := cfg.SourceSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, model.Source{Type: "csv", Path: filepath.Join("data", "new_york_city.csv")}, specs[model.NewYorkCity])
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
data:
  dir: /srv/trips
sources:
  washington:
    type: sqlite
    path: trips.db
  chicago:
    type: csv
    path: /abs/chicago.csv
cache:
  size: 0
server:
  addr: 127.0.0.1:9000
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)

	specs, err := cfg.SourceSpecs()
	require.NoError(t, err)
	assert.Equal(t, model.Source{Type: "sqlite", Path: "/srv/trips/trips.db", Table: "washington"}, specs[model.Washington])
	assert.Equal(t, model.Source{Type: "csv", Path: "/abs/chicago.csv"}, specs[model.Chicago])
	// defaults still cover the city the file leaves out
	assert.Equal(t, "csv", specs[model.NewYorkCity].Type)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BIKESHARE_CACHE_SIZE", "7")
	t.Setenv("BIKESHARE_SERVER_ADDR", ":9999")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Cache.Size)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown city", "sources:\n  boston:\n    type: csv\n    path: boston.csv\n"},
		{"bad source type", "sources:\n  chicago:\n    type: parquet\n    path: chicago.parquet\n"},
		{"negative cache", "cache:\n  size: -1\n"},
		{"bad level", "logging:\n  level: chatty\n"},
		{"bad format", "logging:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, "validating config")
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// chdir is a Go 1.21-compatible stand-in for testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
