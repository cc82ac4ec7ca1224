package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Loading  LoadingConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

// LoadingConfig carries the loading-indicator defaults: spinner size in
// pixels and the delay before the "still waiting" pulse shows.
type LoadingConfig struct {
	DefaultSizePx    int
	DefaultTimeoutMs int
	SessionTTLMins   int
}

type EventsConfig struct {
	AuditTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Loading: LoadingConfig{
			DefaultSizePx:    getEnvAsInt("LOADING_DEFAULT_SIZE_PX", 40),
			DefaultTimeoutMs: getEnvAsInt("LOADING_DEFAULT_TIMEOUT_MS", 10000),
			SessionTTLMins:   getEnvAsInt("LOADING_SESSION_TTL_MINS", 60),
		},
		Events: EventsConfig{
			AuditTopic: getEnv("PAYMENT_AUDIT_TOPIC_NAME", "PAYMENT_AUDIT_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
