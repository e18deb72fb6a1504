package event

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено или не принадлежит группе
	ErrEventNotFound = errors.New("event.repository: event not found")

	// ErrTeeTimeNotFound возвращается, когда слот не найден или не принадлежит событию
	ErrTeeTimeNotFound = errors.New("event.repository: tee time not found")

	// ErrPlayerNotFound возвращается, когда игрок не найден в указанном слоте
	ErrPlayerNotFound = errors.New("event.repository: player not found")

	// ErrTeeTimeFull возвращается, когда условная вставка отклонена: слот заполнен
	ErrTeeTimeFull = errors.New("event.repository: tee time is full")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("event.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("event.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("event.repository: failed to scan row")
)
