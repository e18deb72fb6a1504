package run_reminders

import "errors"

var (
	// ErrRunInProgress возвращается, когда предыдущий запуск рассылки
	// еще не завершился
	ErrRunInProgress = errors.New("run_reminders: run already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("run_reminders: internal error")
)
