package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для внешнего сервиса генерации текста.
// Используется только для вспомогательных текстов (биографии сотрудников,
// сводки по результатам) - сбои никогда не блокируют операции бронирования.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента генерации текста
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Complete отправляет prompt и возвращает сгенерированный текст
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1/completions", c.baseURL)

	payload, err := json.Marshal(CompletionRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var completion CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return completion.Text, nil
}

// CompleteWithFallback возвращает сгенерированный текст, а при любой ошибке -
// переданный fallback. Ошибка логируется и не пробрасывается наверх:
// генерация текста никогда не должна ронять пользовательскую операцию.
func (c *Client) CompleteWithFallback(ctx context.Context, prompt string, fallback string) string {
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		c.log.Error("TextGen unavailable, using fallback text: %v", fmt.Errorf("%w: %v", ErrServiceDegraded, err))
		return fallback
	}

	return text
}
