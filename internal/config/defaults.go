package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4310,
			Host: "localhost",
		},
		Admin: AdminConfig{
			Login:           "admin",
			SessionTTLHours: 24,
		},
		Portfolio: PortfolioConfig{
			DataFile: "./data/portfolio-data.json",
		},
		Uploads: UploadsConfig{
			Dir:               "./uploads/images",
			MaxFileSize:       5 * 1024 * 1024, // 5MB
			AllowedExtensions: []string{"jpg", "jpeg", "png", "gif", "svg", "ico"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
