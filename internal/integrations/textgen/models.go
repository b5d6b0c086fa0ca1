package textgen

// CompletionRequest запрос к сервису генерации текста
type CompletionRequest struct {
	Prompt string `json:"prompt"`
}

// CompletionResponse ответ сервиса генерации текста
type CompletionResponse struct {
	Text string `json:"text"`
}

// ErrorResponse модель ошибки от сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
