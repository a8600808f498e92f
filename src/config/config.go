package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const databaseFile = "tickets.db"

// Config holds everything the server reads from the environment at startup
type Config struct {
	ServerHost        string
	DataDir           string
	AdminPassFallback string
	LogLevel          string
	LogPath           string
	GinMode           string
	CORSOrigins       []string

	DriveCredentialsPath string
	DriveCredentialsJSON string
	DriveFolderID        string
}

// Load reads the .env file (if present) and the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error leyendo .env: %w", err)
	}

	cfg := &Config{
		ServerHost:           getEnv("SERVER_HOST", ":8080"),
		DataDir:              getEnv("DATA_DIR", "data"),
		AdminPassFallback:    getEnv("ADMIN_PASS", "cambia-esto"),
		LogLevel:             strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogPath:              os.Getenv("LOG_PATH"),
		GinMode:              getEnv("GIN_MODE", "release"),
		CORSOrigins:          splitList(os.Getenv("CORS_ORIGINS")),
		DriveCredentialsPath: os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"),
		DriveCredentialsJSON: os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON"),
		DriveFolderID:        os.Getenv("GOOGLE_DRIVE_FOLDER_ID"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have no sensible fallback
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerHost) == "" {
		return errors.New("SERVER_HOST no puede estar vacío")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("DATA_DIR no puede estar vacío")
	}
	if c.AdminPassFallback == "" {
		return errors.New("ADMIN_PASS no puede estar vacío")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL inválido: %q", c.LogLevel)
	}
	return nil
}

// DatabasePath is the SQLite file inside the data directory
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, databaseFile)
}

// EnsureDataDir creates the data directory if it does not exist yet
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("no se pudo crear DATA_DIR %s: %w", c.DataDir, err)
	}
	return nil
}

// DriveEnabled reports whether backups to Google Drive are configured
func (c *Config) DriveEnabled() bool {
	hasCreds := c.DriveCredentialsPath != "" || c.DriveCredentialsJSON != ""
	return hasCreds && c.DriveFolderID != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
