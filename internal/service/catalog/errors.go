package catalog

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	// Детали остаются в логах и не возвращаются клиенту
	ErrInternal = errors.New("catalog: internal error")
)
