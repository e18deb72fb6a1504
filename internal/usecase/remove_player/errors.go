package remove_player

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("remove_player: group not found")

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("remove_player: event not found")

	// ErrTeeTimeNotFound возвращается, когда слот не найден в событии
	ErrTeeTimeNotFound = errors.New("remove_player: tee time not found")

	// ErrPlayerNotFound возвращается, когда игрок не найден в слоте
	ErrPlayerNotFound = errors.New("remove_player: player not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("remove_player: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("remove_player: internal error")
)
