package move_player

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("move_player: group not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("move_player: event not found")

	// ErrTeeTimeNotFound возвращается, когда исходный или целевой слот не найден
	ErrTeeTimeNotFound = errors.New("move_player: tee time not found")

	// ErrPlayerNotFound возвращается, когда игрок не найден в исходном слоте
	ErrPlayerNotFound = errors.New("move_player: player not found")

	// ErrDestinationFull возвращается, когда в целевом слоте нет мест
	// Исходный слот при этом остается без изменений
	ErrDestinationFull = errors.New("move_player: destination tee time is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_player: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_player: internal error")
)
