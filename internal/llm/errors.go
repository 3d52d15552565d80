package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured — GROQ_API_KEY не задан; генерация недоступна
	ErrNotConfigured = errors.New("GROQ_API_KEY не задан: генерация текста недоступна")

	// ErrEmptyResult — сервис вернул пустой или непригодный текст
	ErrEmptyResult = errors.New("пустой ответ от Groq")
)

// TransportError — сетевая ошибка, таймаут, HTTP ошибка или непарсируемый ответ
type TransportError struct {
	Op         string // primary или fallback
	StatusCode int    // 0, если до HTTP статуса не дошло
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ошибка транспорта Groq (%s, HTTP %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ошибка транспорта Groq (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
