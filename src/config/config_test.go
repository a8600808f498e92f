package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerHost:        ":8080",
			DataDir:           "data",
			AdminPassFallback: "cambia-esto",
			LogLevel:          "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty host", mutate: func(c *Config) { c.ServerHost = " " }, wantErr: true},
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: true},
		{name: "empty admin fallback", mutate: func(c *Config) { c.AdminPassFallback = "" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "debug log level", mutate: func(c *Config) { c.LogLevel = "debug" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{
		"SERVER_HOST", "DATA_DIR", "ADMIN_PASS", "LOG_LEVEL", "LOG_PATH", "GIN_MODE",
		"CORS_ORIGINS", "GOOGLE_DRIVE_CREDENTIALS_PATH", "GOOGLE_DRIVE_CREDENTIALS_JSON",
		"GOOGLE_DRIVE_FOLDER_ID",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerHost)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "cambia-esto", cfg.AdminPassFallback)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.DriveEnabled())
	assert.Equal(t, filepath.Join("data", "tickets.db"), cfg.DatabasePath())
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_HOST", ":9090")
	t.Setenv("DATA_DIR", "/var/lib/mesa")
	t.Setenv("ADMIN_PASS", "secreto")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ORIGINS", "http://localhost:8081, ,http://127.0.0.1:8081")
	t.Setenv("GOOGLE_DRIVE_CREDENTIALS_JSON", "{}")
	t.Setenv("GOOGLE_DRIVE_FOLDER_ID", "carpeta")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerHost)
	assert.Equal(t, "secreto", cfg.AdminPassFallback)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:8081", "http://127.0.0.1:8081"}, cfg.CORSOrigins)
	assert.True(t, cfg.DriveEnabled())
	assert.Equal(t, filepath.Join("/var/lib/mesa", "tickets.db"), cfg.DatabasePath())
}

func TestEnsureDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &Config{DataDir: dir}
	require.NoError(t, cfg.EnsureDataDir())
	assert.DirExists(t, dir)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
