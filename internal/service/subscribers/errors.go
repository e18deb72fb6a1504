package subscribers

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("group not found")

	// ErrSubscriberNotFound возвращается, когда подписчик не найден
	// Для отписки по токену это же означает "уже отписан"
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
