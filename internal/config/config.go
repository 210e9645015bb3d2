package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Admin     AdminConfig     `toml:"admin"`
	Portfolio PortfolioConfig `toml:"portfolio"`
	Uploads   UploadsConfig   `toml:"uploads"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// AdminConfig contains admin credentials and session settings.
type AdminConfig struct {
	Login           string `toml:"login"`
	PasswordHash    string `toml:"password_hash"`
	SessionTTLHours int    `toml:"session_ttl_hours"`
}

// PortfolioConfig contains portfolio document settings.
type PortfolioConfig struct {
	DataFile string `toml:"data_file"`
}

// UploadsConfig contains file upload settings.
type UploadsConfig struct {
	Dir               string   `toml:"dir"`
	MaxFileSize       int64    `toml:"max_file_size"`
	AllowedExtensions []string `toml:"allowed_extensions"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies DEPT_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("DEPT_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("DEPT_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if login := os.Getenv("DEPT_ADMIN_LOGIN"); login != "" {
		config.Admin.Login = login
	}
	if hash := os.Getenv("DEPT_ADMIN_PASSWORD_HASH"); hash != "" {
		config.Admin.PasswordHash = hash
	}
	if file := os.Getenv("DEPT_PORTFOLIO_DATA_FILE"); file != "" {
		config.Portfolio.DataFile = file
	}
	if dir := os.Getenv("DEPT_UPLOADS_DIR"); dir != "" {
		config.Uploads.Dir = dir
	}
	if level := os.Getenv("DEPT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory configuration and returns a list of issues.
// An empty list means the configuration is usable.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if strings.TrimSpace(c.Admin.Login) == "" {
		issues = append(issues, "admin.login must not be empty")
	}
	if strings.TrimSpace(c.Admin.PasswordHash) == "" {
		issues = append(issues, "admin.password_hash is not set; generate one with: dept-portal -hash-password <password>")
	}
	if strings.TrimSpace(c.Portfolio.DataFile) == "" {
		issues = append(issues, "portfolio.data_file must not be empty")
	}
	if strings.TrimSpace(c.Uploads.Dir) == "" {
		issues = append(issues, "uploads.dir must not be empty")
	}
	if c.Uploads.MaxFileSize <= 0 {
		issues = append(issues, fmt.Sprintf("uploads.max_file_size must be positive, got %d", c.Uploads.MaxFileSize))
	}

	return issues
}
