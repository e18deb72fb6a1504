package signup_player

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("signup_player: group not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("signup_player: event not found")

	// ErrTeeTimeNotFound возвращается, когда слот не найден в событии
	ErrTeeTimeNotFound = errors.New("signup_player: tee time not found")

	// ErrTeeTimeFull возвращается, когда в слоте не осталось мест
	ErrTeeTimeFull = errors.New("signup_player: tee time is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("signup_player: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("signup_player: internal error")
)
