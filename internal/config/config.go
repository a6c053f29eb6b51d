package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Store    StoreConfig
	JWT      JWTConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Port        int
	Env         string
	FrontendURL string
	// SettingsPath is where UI preferences are persisted locally.
	SettingsPath   string
	SeedSampleData bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// StoreConfig selects the attendance store backend.
type StoreConfig struct {
	// Driver is "postgres" or "memory". The memory driver keeps everything
	// in process and is meant for demos and tests.
	Driver string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AdminConfig holds the single admin credential that fronts the API.
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		SettingsPath:   getEnv("SETTINGS_PATH", "attendance_settings.json"),
		SeedSampleData: getEnv("SEED_SAMPLE_DATA", "false") == "true",
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "asistapp"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Store = StoreConfig{
		Driver: getEnv("STORE_DRIVER", "postgres"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	config.Admin = AdminConfig{
		Email:        getEnv("ADMIN_EMAIL", ""),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required with the postgres store")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.Store.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.Email == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
