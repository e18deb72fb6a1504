package generate_tee_times

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("generate_tee_times: event not found")

	// ErrNotTeeTimeEvent возвращается, когда событие не использует слоты
	ErrNotTeeTimeEvent = errors.New("generate_tee_times: event does not use tee times")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_tee_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_tee_times: internal error")
)
