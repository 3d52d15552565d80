package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type GroqConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

// LoadGroqConfig загружает конфигурацию Groq из переменных окружения
func LoadGroqConfig() GroqConfig {
	return GroqConfig{
		APIKey:  sanitizeAPIKey(os.Getenv("GROQ_API_KEY")),
		Model:   getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		APIURL:  getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
		Timeout: getEnvAsDuration("GROQ_TIMEOUT", 30*time.Second),
	}
}

// ValidateConfig проверяет корректность конфигурации
func (c *GroqConfig) ValidateConfig() error {
	if c.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}

	if c.Model == "" {
		return fmt.Errorf("GROQ_MODEL не может быть пустым")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("GROQ_TIMEOUT должен быть положительным")
	}

	return nil
}

// sanitizeAPIKey убирает случайные кавычки и пробелы вокруг ключа
func sanitizeAPIKey(raw string) string {
	key := strings.TrimSpace(raw)
	key = strings.Trim(key, `"'`)
	return key
}
