package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"interview-practice-partner/internal/config"
)

// Client — клиент генерации текста через Groq API.
// Основной транспорт использует типизированные структуры; при его сбое
// делается ровно одна повторная попытка через резервный транспорт с
// толерантным парсингом ответа. Слой сессии сам никогда не ретраит.
type Client struct {
	cfg    config.GroqConfig
	client *http.Client
}

// New создает новый клиент Groq
func New(cfg config.GroqConfig) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Enabled сообщает, настроен ли клиент. Чистая функция конфигурации.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// Generate генерирует текст по промпту.
// Возвращает ErrNotConfigured без ключа, ErrEmptyResult при пустом тексте,
// *TransportError при сетевых и HTTP ошибках.
func (c *Client) Generate(prompt string, maxTokens int, temperature float64) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	text, primaryErr := c.generateTyped(prompt, maxTokens, temperature)
	if primaryErr == nil {
		return strings.TrimSpace(text), nil
	}

	// Резервная попытка с толерантным парсингом
	text, fallbackErr := c.generateRaw(prompt, maxTokens, temperature)
	if fallbackErr != nil {
		return "", &TransportError{
			Op:  "fallback",
			Err: fmt.Errorf("основной транспорт: %v; резервный транспорт: %w", primaryErr, fallbackErr),
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

// generateTyped — основной транспорт с типизированным парсингом ответа
func (c *Client) generateTyped(prompt string, maxTokens int, temperature float64) (string, error) {
	body, err := c.doRequest(prompt, maxTokens, temperature, "primary")
	if err != nil {
		return "", err
	}

	var chatResp ChatResponse
	err = json.Unmarshal(body, &chatResp)
	if err != nil {
		return "", &TransportError{Op: "primary", Err: fmt.Errorf("ошибка парсинга ответа: %w", err)}
	}

	if chatResp.Error != nil {
		return "", &TransportError{Op: "primary", Err: fmt.Errorf("Groq API ошибка: %s", chatResp.Error.Message)}
	}

	if len(chatResp.Choices) == 0 {
		return "", &TransportError{Op: "primary", Err: fmt.Errorf("ответ без choices")}
	}

	// Пустой content в типизированной форме может означать ответ другой
	// формы (choices[0].text); отдаем его резервному транспорту
	content := chatResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &TransportError{Op: "primary", Err: fmt.Errorf("пустой message.content в ответе")}
	}

	return content, nil
}

// generateRaw — резервный транспорт: тот же endpoint, толерантный парсинг
func (c *Client) generateRaw(prompt string, maxTokens int, temperature float64) (string, error) {
	body, err := c.doRequest(prompt, maxTokens, temperature, "fallback")
	if err != nil {
		return "", err
	}

	var raw rawResponse
	err = json.Unmarshal(body, &raw)
	if err != nil {
		return "", &TransportError{Op: "fallback", Err: fmt.Errorf("ошибка парсинга ответа: %w", err)}
	}

	if raw.Error != nil {
		return "", &TransportError{Op: "fallback", Err: fmt.Errorf("Groq API ошибка: %s", raw.Error.Message)}
	}

	if len(raw.Choices) == 0 {
		return "", &TransportError{Op: "fallback", Err: fmt.Errorf("ответ без choices")}
	}

	if raw.Choices[0].Message.Content != "" {
		return raw.Choices[0].Message.Content, nil
	}
	return raw.Choices[0].Text, nil
}

// doRequest выполняет HTTP запрос к Groq и возвращает тело ответа
func (c *Client) doRequest(prompt string, maxTokens int, temperature float64, op string) ([]byte, error) {
	request := ChatRequest{
		Model: c.cfg.Model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("ошибка сериализации запроса: %w", err)}
	}

	req, err := http.NewRequest("POST", c.cfg.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("ошибка создания запроса: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.APIKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("ошибка выполнения запроса: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("ошибка чтения ответа: %w", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("ошибка авторизации Groq: проверьте GROQ_API_KEY и права модели: %s", string(body)),
		}
	}

	if resp.StatusCode >= 400 {
		return nil, &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", string(body)),
		}
	}

	return body, nil
}
