package textgen

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("textgen client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("textgen client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис генерации текста недоступен и следует
	// использовать фиксированный fallback-текст
	ErrServiceDegraded = errors.New("textgen unavailable: graceful degradation applied")
)
