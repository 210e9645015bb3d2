package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dept-portal.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 4310, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "admin", cfg.Admin.Login)
	assert.Equal(t, 24, cfg.Admin.SessionTTLHours)
	assert.Equal(t, "./data/portfolio-data.json", cfg.Portfolio.DataFile)
	assert.Equal(t, "./uploads/images", cfg.Uploads.Dir)
	assert.Equal(t, int64(5*1024*1024), cfg.Uploads.MaxFileSize)
	assert.Contains(t, cfg.Uploads.AllowedExtensions, "png")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFiles(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9000

[admin]
login = "boss"
password_hash = "$2a$10$example"

[uploads]
max_file_size = 1048576
`)

	cfg, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "boss", cfg.Admin.Login)
	assert.Equal(t, int64(1048576), cfg.Uploads.MaxFileSize)
	// Untouched settings keep their defaults.
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "./data/portfolio-data.json", cfg.Portfolio.DataFile)
}

func TestLoadFromFilesLaterFileWins(t *testing.T) {
	first := writeConfigFile(t, "[server]\nport = 9000\n")
	second := writeConfigFile(t, "[server]\nport = 9100\n")

	cfg, err := LoadFromFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadFromFilesInvalidTOML(t *testing.T) {
	path := writeConfigFile(t, "not [valid toml")
	_, err := LoadFromFiles(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DEPT_SERVER_PORT", "8088")
	t.Setenv("DEPT_SERVER_HOST", "0.0.0.0")
	t.Setenv("DEPT_ADMIN_LOGIN", "envadmin")
	t.Setenv("DEPT_ADMIN_PASSWORD_HASH", "$2a$10$envhash")
	t.Setenv("DEPT_PORTFOLIO_DATA_FILE", "/srv/data.json")
	t.Setenv("DEPT_UPLOADS_DIR", "/srv/images")
	t.Setenv("DEPT_LOG_LEVEL", "debug")

	cfg, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "envadmin", cfg.Admin.Login)
	assert.Equal(t, "$2a$10$envhash", cfg.Admin.PasswordHash)
	assert.Equal(t, "/srv/data.json", cfg.Portfolio.DataFile)
	assert.Equal(t, "/srv/images", cfg.Uploads.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := writeConfigFile(t, "[server]\nport = 9000\n")
	t.Setenv("DEPT_SERVER_PORT", "9999")

	cfg, err := LoadFromFiles(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 7000, "127.0.0.1")
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	// Zero values leave the config alone.
	ApplyFlagOverrides(cfg, 0, "")
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Admin.PasswordHash = "$2a$10$example"
	assert.Empty(t, cfg.Validate())
}

func TestValidateReportsIssues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = 0
	cfg.Admin.Login = " "
	cfg.Portfolio.DataFile = ""
	cfg.Uploads.Dir = ""
	cfg.Uploads.MaxFileSize = 0

	issues := cfg.Validate()
	assert.Len(t, issues, 6, "missing password hash plus five explicit breakages")
}

func TestValidateMissingPasswordHash(t *testing.T) {
	cfg := NewDefaultConfig()

	issues := cfg.Validate()
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "password_hash")
	assert.Contains(t, issues[0], "-hash-password")
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.NotEmpty(t, GetFullVersion())
}
