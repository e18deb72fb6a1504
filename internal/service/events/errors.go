package events

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("group not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrNotTeeTimeEvent возвращается при попытке работать со слотами
	// события, которое их не поддерживает
	ErrNotTeeTimeEvent = errors.New("event does not use tee times")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
