package config

import "os"

type Config struct {
	ServerAddress string
	PostgresURL   string
	MigrationsURL string

	// JWTSecret signs the 4-hour supplier session claims.
	JWTSecret string
	// AdminToken guards the administrative endpoints.
	AdminToken string
	// ERPAPIKey is the shared secret the external ERP presents on bulk imports.
	ERPAPIKey string

	UploadsDir string

	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}

	cfg.ServerAddress = getEnv("SERVER_ADDRESS", ":8080")
	cfg.PostgresURL = getEnv("POSTGRES_CONN", "")
	cfg.MigrationsURL = getEnv("MIGRATIONS_URL", "file://migrations")

	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.AdminToken = getEnv("ADMIN_TOKEN", "")
	cfg.ERPAPIKey = getEnv("ERP_API_KEY", "")

	cfg.UploadsDir = getEnv("UPLOADS_DIR", "./uploads")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
