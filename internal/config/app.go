package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Groq   GroqConfig
	App    AppSettings
	Server ServerConfig
}

type AppSettings struct {
	Mode       string // console или server
	Role       string
	RubricPath string
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Groq:   LoadGroqConfig(),
		App: AppSettings{
			Mode:       getEnv("APP_MODE", "console"),
			Role:       getEnv("APP_ROLE", "software_engineer"),
			RubricPath: getEnv("RUBRIC_PATH", "config/rubric.yaml"),
		},
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
