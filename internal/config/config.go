package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr     string
	BasePath string
	Database DatabaseConfig
}

// DatabaseConfig represents a single database connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ConnectionString returns a PostgreSQL connection string.
func (dc DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dc.Host, dc.Port, dc.User, dc.Password, dc.Name, dc.SSLMode,
	)
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:     ":" + getenv("PORT", "8080"),
		BasePath: getenv("API_BASE_PATH", "/api"),
		Database: DatabaseConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenvInt("DB_PORT", 5432),
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "postgres"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
