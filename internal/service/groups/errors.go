package groups

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("group not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
