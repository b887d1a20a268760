package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Trash     TrashConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
	OtelEnabled        bool
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "sqlite"
	Connection string
}

type TrashConfig struct {
	GracePeriodDays         int // sets TrashRecord.PermanentDeleteAt
	SettingsCacheTTLMinutes int
}

type SchedulerConfig struct {
	Schedule       string // cron spec; empty disables the trigger
	LockTTLMinutes int    // 0 disables the redis run-lock
	RunOnStart     bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}
	return FromEnv()
}

// FromEnv reads the process environment without touching .env.
func FromEnv() *Config {
	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "trash_audit.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Trash: TrashConfig{
			GracePeriodDays:         getEnvAsInt("TRASH_GRACE_PERIOD_DAYS", 30),
			SettingsCacheTTLMinutes: getEnvAsInt("AUTO_DELETE_SETTINGS_CACHE_TTL_MINUTES", 10),
		},
		Scheduler: SchedulerConfig{
			Schedule:       getEnv("AUTO_DELETE_SCHEDULE", "0 3 * * *"),
			LockTTLMinutes: getEnvAsInt("AUTO_DELETE_LOCK_TTL_MINUTES", 30),
			RunOnStart:     getEnvAsBool("AUTO_DELETE_RUN_ON_START", false),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
